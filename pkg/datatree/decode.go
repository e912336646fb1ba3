package datatree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode unmarshals YAML (or JSON, which YAML subsumes) into a validated
// Node. Validation happens exactly once, here at the boundary: every value
// must be a string or a string-keyed mapping, so the rest of the program
// can treat the tree as a closed, already-checked variant.
func Decode(data []byte) (Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse swap data: %w", err)
	}

	return fromAny(raw, "")
}

// DecodeFile reads and decodes a swap data file.
func DecodeFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read swap data file: %w", err)
	}

	node, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return node, nil
}

// fromAny converts a freshly unmarshaled value into the closed variant.
// at tracks the location within the document for error messages; it is
// empty at the root.
func fromAny(raw any, at string) (Node, error) {
	switch v := raw.(type) {
	case string:
		return Leaf(v), nil

	case map[string]any:
		branch := make(Branch, len(v))
		for key, child := range v {
			node, err := fromAny(child, join(at, key))
			if err != nil {
				return nil, err
			}
			branch[key] = node
		}
		return branch, nil

	// yaml.v3 produces map[string]any for string-keyed mappings, but a
	// document with non-string keys decodes to map[any]any instead.
	case map[any]any:
		branch := make(Branch, len(v))
		for key, child := range v {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v at %q", ErrInvalidNode, key, displayPath(at))
			}
			node, err := fromAny(child, join(at, name))
			if err != nil {
				return nil, err
			}
			branch[name] = node
		}
		return branch, nil

	default:
		return nil, fmt.Errorf("%w: %T at %q, want string or mapping", ErrInvalidNode, raw, displayPath(at))
	}
}

func join(at, key string) string {
	if at == "" {
		return key
	}
	return at + "/" + key
}

func displayPath(at string) string {
	if at == "" {
		return "(root)"
	}
	return at
}
