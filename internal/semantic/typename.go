package semantic

import (
	"strings"

	"github.com/novalang/nova/internal/types"
)

// resolveTypeName parses a stored type-name string ("List<Int>", "String?")
// back into a structural type. Per the design note on string-based type
// fallbacks, this is the one place that happens — everywhere else commits
// to the structural ast.TypeRef/types.Type path.
func (a *Analyzer) resolveTypeName(raw string) types.Type {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	nullable := false
	if strings.HasSuffix(raw, "?") {
		nullable = true
		raw = strings.TrimSuffix(raw, "?")
	}

	var result types.Type
	if idx := strings.IndexByte(raw, '<'); idx >= 0 && strings.HasSuffix(raw, ">") {
		name := raw[:idx]
		args := splitTypeArgs(raw[idx+1 : len(raw)-1])
		typeArgs := make([]types.TypeArgument, 0, len(args))
		for _, argRaw := range args {
			argType := a.resolveTypeName(argRaw)
			if argType == nil {
				argType = types.Error{}
			}
			typeArgs = append(typeArgs, types.TypeArgument{Type: argType})
		}
		result = types.Class{Name: name, TypeArgs: typeArgs}
	} else {
		switch {
		case types.IsPrimitiveName(raw):
			result = types.Primitive{Name: raw}
		case raw == "Unit":
			result = types.Unit{}
		case raw == "Nothing":
			result = types.Nothing{}
		case raw == "Any":
			result = types.Any()
		case raw == "Number":
			result = types.Number()
		default:
			result = types.Class{Name: raw}
		}
	}
	if nullable {
		result = result.WithNullable(true)
	}
	return result
}

// splitTypeArgs splits a generic argument list on top-level commas,
// ignoring commas nested inside angle brackets.
func splitTypeArgs(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if start < len(s) {
		out = append(out, strings.TrimSpace(s[start:]))
	}
	return out
}
