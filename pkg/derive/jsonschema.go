package derive

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/caliperhq/caliper/pkg/types"
)

// FromDocument derives an object schema from a JSON-Schema document encoded
// as JSON or YAML.
func FromDocument(data []byte, opts ...Option) (*types.MapType, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("derive: invalid document: %w", err)
	}
	return FromJSONSchema(doc, opts...)
}

// FromJSONSchema derives an object schema from a decoded JSON-Schema
// document. The document's "required" array controls optionality: fields it
// does not list come back wrapped in Optional. String "format" hints
// (email, uuid, date, date-time) select the matching specialized kind.
//
// Malformed or unsupported documents fail immediately; no partial schema is
// ever returned.
func FromJSONSchema(doc map[string]any, opts ...Option) (*types.MapType, error) {
	if doc == nil {
		return nil, fmt.Errorf("derive: document must be a non-nil map")
	}
	if typ, _ := doc["type"].(string); typ != "object" {
		return nil, fmt.Errorf("derive: document type must be %q, got %v", "object", doc["type"])
	}
	cfg := newConfig(opts)

	props := map[string]any{}
	if raw, ok := doc["properties"]; ok {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("derive: properties must be an object, got %T", raw)
		}
		props = m
	}

	required, err := requiredSet(doc["required"])
	if err != nil {
		return nil, err
	}

	fields := make(map[string]types.Type, len(props))
	for _, name := range sortedKeys(props) {
		if !cfg.keeps(name) {
			continue
		}
		sub, ok := props[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("derive: property %q must be an object schema, got %T", name, props[name])
		}
		t, err := typeFromSchema(name, sub)
		if err != nil {
			return nil, err
		}
		if !required[name] {
			t = types.Optional(t)
		}
		fields[name] = t
	}

	mapOpts := []types.MapOption{}
	if allowed, ok := doc["additionalProperties"].(bool); ok {
		mapOpts = append(mapOpts, types.AdditionalProperties(allowed))
	}
	return types.Map(fields, mapOpts...), nil
}

func requiredSet(raw any) (map[string]bool, error) {
	set := map[string]bool{}
	if raw == nil {
		return set, nil
	}
	list, ok := raw.([]any)
	if !ok {
		if names, ok := raw.([]string); ok {
			for _, n := range names {
				set[n] = true
			}
			return set, nil
		}
		return nil, fmt.Errorf("derive: required must be an array of field names, got %T", raw)
	}
	for _, item := range list {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("derive: required entries must be strings, got %T", item)
		}
		set[name] = true
	}
	return set, nil
}

func typeFromSchema(name string, sub map[string]any) (types.Type, error) {
	typ, _ := sub["type"].(string)
	switch typ {
	case "string":
		return stringFromSchema(sub), nil
	case "integer":
		return types.Integer(numberOptions(sub)...), nil
	case "number":
		return types.Float(numberOptions(sub)...), nil
	case "boolean":
		return types.Boolean(), nil
	case "array":
		item := types.Type(types.String())
		if raw, ok := sub["items"]; ok {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("derive: property %q: items must be an object schema, got %T", name, raw)
			}
			inner, err := typeFromSchema(name, m)
			if err != nil {
				return nil, err
			}
			item = inner
		}
		return types.Array(item), nil
	case "object":
		return FromJSONSchema(sub)
	default:
		return nil, fmt.Errorf("derive: property %q has unsupported type %q", name, typ)
	}
}

func stringFromSchema(sub map[string]any) types.Type {
	switch format, _ := sub["format"].(string); format {
	case "email":
		return types.Email()
	case "uuid":
		return types.UUID()
	case "date":
		return types.Date()
	case "date-time":
		return types.DateTime()
	}

	var opts []types.StringOption
	if n, ok := intValue(sub["minLength"]); ok {
		opts = append(opts, types.MinLength(n))
	}
	if n, ok := intValue(sub["maxLength"]); ok {
		opts = append(opts, types.MaxLength(n))
	}
	if p, ok := sub["pattern"].(string); ok {
		opts = append(opts, types.Pattern(p))
	}
	return types.String(opts...)
}

func numberOptions(sub map[string]any) []types.NumberOption {
	var opts []types.NumberOption
	if v, ok := floatValue(sub["minimum"]); ok {
		opts = append(opts, types.Minimum(v))
	}
	if v, ok := floatValue(sub["maximum"]); ok {
		opts = append(opts, types.Maximum(v))
	}
	if v, ok := floatValue(sub["exclusiveMinimum"]); ok {
		opts = append(opts, types.ExclusiveMinimum(v))
	}
	if v, ok := floatValue(sub["exclusiveMaximum"]); ok {
		opts = append(opts, types.ExclusiveMaximum(v))
	}
	if v, ok := floatValue(sub["multipleOf"]); ok {
		opts = append(opts, types.MultipleOf(v))
	}
	return opts
}

func intValue(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func floatValue(raw any) (float64, bool) {
	switch n := raw.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
