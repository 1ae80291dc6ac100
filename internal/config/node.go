package config

import (
	"fmt"
	"math"
)

const rootField = "<root>"

// node is one untyped YAML mapping. All lookups go through its accessors so
// every block reports missing or mistyped keys the same way.
type node struct {
	path   string
	values map[string]any
}

func newNode(parent, key string, raw any) (node, error) {
	path := joinPath(parent, key)
	switch m := raw.(type) {
	case nil:
		return node{path: path, values: map[string]any{}}, nil
	case map[string]any:
		return node{path: path, values: m}, nil
	case map[any]any:
		values := make(map[string]any, len(m))
		for k, v := range m {
			values[fmt.Sprint(k)] = v
		}
		return node{path: path, values: values}, nil
	default:
		if key == "" {
			key = rootField
		}
		return node{}, &TypeMismatchError{Field: key, Path: parent, Expected: "mapping", Got: kindOf(raw)}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// lookup treats an explicit null the same as an absent key.
func (n node) lookup(key string) (any, bool) {
	v, ok := n.values[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (n node) missing(key string) error {
	return &MissingFieldError{Field: key, Path: n.path}
}

func (n node) mismatch(key, expected string, got any) error {
	return &TypeMismatchError{Field: key, Path: n.path, Expected: expected, Got: kindOf(got)}
}

func (n node) requiredString(key string) (string, error) {
	v, ok := n.lookup(key)
	if !ok {
		return "", n.missing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", n.mismatch(key, "string", v)
	}
	return s, nil
}

func (n node) optionalString(key string) (*string, error) {
	v, ok := n.lookup(key)
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, n.mismatch(key, "string", v)
	}
	return &s, nil
}

func (n node) optionalInt(key string) (*int, error) {
	v, ok := n.lookup(key)
	if !ok {
		return nil, nil
	}

	var i int
	switch num := v.(type) {
	case int:
		i = num
	case int64:
		if num < math.MinInt || num > math.MaxInt {
			return nil, n.mismatch(key, "integer", v)
		}
		i = int(num)
	case uint64:
		if num > math.MaxInt {
			return nil, n.mismatch(key, "integer", v)
		}
		i = int(num)
	default:
		return nil, n.mismatch(key, "integer", v)
	}

	return &i, nil
}

func (n node) optionalBool(key string, def bool) (bool, error) {
	v, ok := n.lookup(key)
	if !ok {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		// yaml.v3 follows YAML 1.2, configs written for YAML 1.1 loaders use yes/no/on/off
		if parsed, ok := yaml11Bools[b]; ok {
			return parsed, nil
		}
	}
	return def, n.mismatch(key, "boolean", v)
}

var yaml11Bools = map[string]bool{
	"yes": true, "Yes": true, "YES": true,
	"on": true, "On": true, "ON": true,
	"no": false, "No": false, "NO": false,
	"off": false, "Off": false, "OFF": false,
}

func (n node) requiredMap(key string) (node, error) {
	v, ok := n.lookup(key)
	if !ok {
		return node{}, n.missing(key)
	}
	return newNode(n.path, key, v)
}

// optionalMap returns ok=false when key is absent or null.
func (n node) optionalMap(key string) (node, bool, error) {
	v, ok := n.lookup(key)
	if !ok {
		return node{}, false, nil
	}
	child, err := newNode(n.path, key, v)
	if err != nil {
		return node{}, false, err
	}
	return child, true, nil
}

func (n node) requiredSeq(key string) ([]any, error) {
	v, ok := n.values[key]
	if !ok {
		return nil, n.missing(key)
	}
	switch seq := v.(type) {
	case nil:
		// "automate:" with no entries
		return []any{}, nil
	case []any:
		return seq, nil
	default:
		return nil, n.mismatch(key, "sequence", v)
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
