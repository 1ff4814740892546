package registry

import _ "embed"

//go:embed builtins.yaml
var defaultManifest []byte

// Default builds the TypeRegistry novac uses when no external manifest is
// supplied: println/print/readLine and the core String/List/Set/Map
// methods the analyzer's inference code falls back to.
func Default() (*StaticRegistry, error) {
	return LoadYAML(defaultManifest)
}
