package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// manifest is the on-disk shape LoadYAML decodes, matching the minimal
// schema documented alongside the core's TypeRegistry: a flat function
// list, a flat constant list, and a map of type name to its method list.
type manifest struct {
	Functions []struct {
		Name    string `yaml:"name"`
		Returns string `yaml:"returns"`
	} `yaml:"functions"`
	Constants []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"constants"`
	Methods map[string][]struct {
		Name    string   `yaml:"name"`
		Returns string   `yaml:"returns"`
		Params  []string `yaml:"params"`
		Static  bool     `yaml:"static"`
	} `yaml:"methods"`
}

// LoadYAML decodes a manifest and builds a StaticRegistry from it.
func LoadYAML(data []byte) (*StaticRegistry, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("registry: decoding manifest: %w", err)
	}

	reg := NewStatic()
	for _, f := range m.Functions {
		reg.AddFunction(f.Name, f.Returns)
	}
	for _, c := range m.Constants {
		reg.AddConstant(c.Name, c.Type)
	}
	for typeName, methods := range m.Methods {
		for _, meth := range methods {
			reg.AddMethod(typeName, MethodSig{
				Name:       meth.Name,
				ReturnType: meth.Returns,
				ParamTypes: meth.Params,
				Static:     meth.Static,
			})
		}
	}
	return reg, nil
}
