package dtype

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	distaff "github.com/reoring/distaff"
)

// base carries the common option set and the default behavior shared by the
// built-in types: NA is "absent or nil", traversal and serialization are
// identity.
type base struct {
	common distaff.Common
}

func (b *base) Common() distaff.Common { return b.common }

func (b *base) IsNA(v any) bool { return distaff.IsAbsentOrNil(v) }

func (b *base) Traverse(v any, _ distaff.Path, _ *distaff.ErrorTree, _ distaff.ProcessOpt) any {
	return v
}

func (b *base) ToSerializable(v any) any { return v }

// checkRequired enforces the required option for NA values. Default
// substitution has already run by the time Validate is called, so a declared
// default exempts the field.
func (b *base) checkRequired(na bool) error {
	if na && b.common.Required {
		return distaff.NewValidationError(distaff.CodeRequired, nil)
	}
	return nil
}

// checkChoices enforces enumeration membership for non-NA values.
func (b *base) checkChoices(v any) error {
	if len(b.common.Choices) == 0 {
		return nil
	}
	for _, c := range b.common.Choices {
		if equalValue(v, c) {
			return nil
		}
	}
	return distaff.NewValidationError(distaff.CodeInvalidEnum, map[string]string{
		"value": displayValue(v),
	})
}

// commonFromOptions extracts the options every type recognizes. The document
// already passed meta-schema validation; type assertions here only guard
// against direct Factory use.
func commonFromOptions(opts map[string]any) (distaff.Common, error) {
	c := distaff.NewCommon()
	if v, ok := opts["required"]; ok {
		b, ok := v.(bool)
		if !ok {
			return c, fmt.Errorf("required: expected bool, got %T", v)
		}
		c.Required = b
	}
	if v, ok := opts["default"]; ok {
		c.Default = v
	}
	if v, ok := opts["fillna"]; ok {
		c.FillNA = v
	}
	if v, ok := opts["choices"]; ok && v != nil {
		list, err := toSlice(v)
		if err != nil {
			return c, fmt.Errorf("choices: %w", err)
		}
		c.Choices = list
	}
	return c, nil
}

// decodeOptions maps the raw document onto a per-type option struct. Weak
// typing absorbs the scalar differences between JSON (json.Number) and YAML
// (int/float64) documents; keys not present in dst are ignored because the
// meta-schema has already rejected genuinely unknown ones.
func decodeOptions(src map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "schema",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

// toSlice widens any slice or array into []any.
func toSlice(v any) ([]any, error) {
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// toStringMap widens any string-keyed map into map[string]any.
func toStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// equalValue compares a candidate against a choice across the scalar
// representations the document sources produce (int vs int64 vs json.Number,
// float64, time.Time).
func equalValue(a, b any) bool {
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai == bi
		}
	}
	if af, ok := asFloat64(a); ok {
		if bf, ok := asFloat64(b); ok {
			return af == bf
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
	}
	return reflect.DeepEqual(a, b)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// displayValue renders a value for error messages; strings keep quotes so
// "cannot convert '-' to integer" reads unambiguously.
func displayValue(v any) string {
	switch s := v.(type) {
	case string:
		return "'" + s + "'"
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
