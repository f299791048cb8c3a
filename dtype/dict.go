package dtype

import (
	"fmt"
	"sort"

	distaff "github.com/reoring/distaff"
)

// dictType traverses each declared field against its own schema. Fields are
// visited in sorted key order for deterministic error selection. Undeclared
// input keys follow the unknown policy; the default is passthrough, so data
// outside the schema flows through unchanged.
type dictType struct {
	base
	items      map[string]*distaff.Schema
	sortedKeys []string
	unknown    distaff.UnknownPolicy
}

type dictOptions struct {
	Items   map[string]map[string]any `schema:"items"`
	Unknown string                    `schema:"unknown"`
}

type dictFactory struct{}

func (dictFactory) OptionSchema() map[string]any {
	return map[string]any{
		"items": map[string]any{"type": "dict"},
		"unknown": map[string]any{
			"type":    "string",
			"choices": []any{"passthrough", "strip", "error"},
		},
	}
}

func (dictFactory) New(options map[string]any, c distaff.Compiler) (distaff.DataType, error) {
	common, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o dictOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}

	items := make(map[string]*distaff.Schema, len(o.Items))
	keys := make([]string, 0, len(o.Items))
	for k, doc := range o.Items {
		s, err := c.Compile(doc)
		if err != nil {
			return nil, fmt.Errorf("items[%s]: %w", k, err)
		}
		items[k] = s
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var policy distaff.UnknownPolicy
	switch o.Unknown {
	case "", "passthrough":
		policy = distaff.UnknownPassthrough
	case "strip":
		policy = distaff.UnknownStrip
	case "error":
		policy = distaff.UnknownStrict
	default:
		return nil, fmt.Errorf("unknown: unsupported policy %q", o.Unknown)
	}

	return &dictType{
		base:       base{common: common},
		items:      items,
		sortedKeys: keys,
		unknown:    policy,
	}, nil
}

// Coerce accepts string-keyed mappings only; there is no implicit conversion
// into a dict.
func (t *dictType) Coerce(v any) (any, error) {
	if m, ok := toStringMap(v); ok {
		return m, nil
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "dict",
	})
}

func (t *dictType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "dict"})
	}
	return t.checkChoices(m)
}

func (t *dictType) Traverse(v any, path distaff.Path, errs *distaff.ErrorTree, opt distaff.ProcessOpt) any {
	src, ok := v.(map[string]any)
	if !ok {
		return v
	}

	out := make(map[string]any, len(src))

	// Undeclared keys first, in sorted order, per policy. With no items
	// schema every present key is unconstrained and passes through.
	if len(t.items) == 0 {
		for k, val := range src {
			out[k] = val
		}
		return out
	}
	unknown := make([]string, 0, len(src))
	for k := range src {
		if _, declared := t.items[k]; !declared {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		switch t.unknown {
		case distaff.UnknownStrict:
			errs.AppendIssue(distaff.CodeUnknownKey, map[string]string{"key": k})
		case distaff.UnknownStrip:
			// drop
		default:
			out[k] = src[k]
		}
	}

	for _, k := range t.sortedKeys {
		child := t.items[k]
		val, present := src[k]
		if !present {
			val = distaff.Absent
		}
		ct := distaff.NewErrorTree()
		cv := child.ProcessInto(val, path.Key(k), ct, opt)
		errs.Merge(k, ct)
		if !distaff.IsAbsent(cv) {
			out[k] = cv
		}
	}
	return out
}
