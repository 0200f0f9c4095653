package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML (or JSON) definition.
// Scalar labels keep their source text, so 1.10 stays "1.10".
// An empty or null document yields the absent marker.
func Parse(data []byte) (domain.Child, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Absent(), fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}
	return decodeNode(&doc)
}

// ParseJSON decodes a single JSON definition. Numbers keep their source text.
func ParseJSON(data []byte) (domain.Child, error) {
	raw, err := UnmarshalJSON(data)
	if err != nil {
		return domain.Absent(), err
	}
	return Decode(raw)
}

// UnmarshalJSON decodes one JSON value for Decode, keeping numbers as json.Number.
func UnmarshalJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", domain.ErrInvalidDefinition)
	}
	return raw, nil
}

// ParseAll decodes every document of a YAML stream, in order.
func ParseAll(data []byte) ([]domain.Child, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var roots []domain.Child
	for i := 0; ; i++ {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", domain.ErrInvalidDefinition, i, err)
		}

		root, err := decodeNode(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		roots = append(roots, root)
	}

	return roots, nil
}

func decodeNode(doc *yaml.Node) (domain.Child, error) {
	raw, err := plainValue(doc)
	if err != nil {
		return domain.Absent(), fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}
	return Decode(raw)
}

// plainValue converts a YAML node into maps, slices and strings. Every scalar
// except null becomes its source text.
func plainValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return plainValue(n.Content[0])
	case yaml.AliasNode:
		return plainValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := plainValue(c)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := plainValue(val)
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

// LoadFile reads a UTF-8 file at path and decodes every document it contains.
func LoadFile(path string) ([]domain.Child, error) {
	return LoadFileEncoded(path, "")
}

// LoadFileEncoded is LoadFile for files saved in the named encoding (see NewReader).
func LoadFileEncoded(path, encodingName string) ([]domain.Child, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	defer f.Close()

	roots, err := ReadAll(f, encodingName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roots, nil
}

// Decode converts an already unmarshaled value (maps, slices and scalars as produced
// by yaml.v3 or encoding/json) into a tree. Numeric scalars are formatted back to
// text; use Parse or UnmarshalJSON to keep labels exactly as written.
func Decode(raw any) (domain.Child, error) {
	if raw == nil {
		return domain.Absent(), nil
	}

	var errs []error
	validate(raw, "root", &errs)
	if len(errs) > 0 {
		return domain.Absent(), fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, &AggregateError{Errors: errs})
	}

	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       definitionHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &def,
	})
	if err != nil {
		return domain.Absent(), fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Absent(), fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}

	return def.Root(), nil
}

var (
	definitionType = reflect.TypeOf(Definition{})
	stringType     = reflect.TypeOf("")
)

// definitionHook expands scalar shorthand into a labelled leaf and renders
// booleans as "true"/"false" rather than mapstructure's weak "1"/"0".
func definitionHook(from, to reflect.Type, data any) (any, error) {
	switch {
	case to == definitionType && from.Kind() != reflect.Map:
		return map[string]any{"label": labelText(data)}, nil
	case to == stringType && from.Kind() == reflect.Bool:
		return strconv.FormatBool(data.(bool)), nil
	}
	return data, nil
}

func labelText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func validate(raw any, path string, errs *[]error) {
	switch v := raw.(type) {
	case nil:
		return
	case map[string]any:
		validateMapping(v, path, errs)
	case map[any]any:
		*errs = append(*errs, &ValidationError{Path: path, Reason: "keys must be strings", Value: v})
	case []any:
		*errs = append(*errs, &ValidationError{Path: path, Reason: "node must be a mapping or a scalar label", Value: v})
	}
}

func validateMapping(m map[string]any, path string, errs *[]error) {
	label, ok := m["label"]
	if !ok {
		*errs = append(*errs, &ValidationError{Path: path, Reason: "missing label"})
	} else if !isScalar(label) {
		*errs = append(*errs, &ValidationError{Path: path + ".label", Reason: "label must be a scalar", Value: label})
	}

	kids, ok := m["children"]
	if !ok || kids == nil {
		return
	}
	list, ok := kids.([]any)
	if !ok {
		*errs = append(*errs, &ValidationError{Path: path + ".children", Reason: "children must be a list", Value: kids})
		return
	}
	for i, k := range list {
		validate(k, fmt.Sprintf("%s.children[%d]", path, i), errs)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, uint64, float64, json.Number:
		return true
	}
	return false
}
