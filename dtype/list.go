package dtype

import (
	"fmt"
	"strconv"

	distaff "github.com/reoring/distaff"
)

// listType traverses each element against its items schema. A single items
// schema is reused for every element; when several are given they are cycled
// positionally (element i uses schema i % len). The cycling is a deliberate,
// documented behavior, not strict arity checking.
type listType struct {
	base
	items    []*distaff.Schema
	minItems *int
	maxItems *int
}

type listOptions struct {
	Items    any  `schema:"items"`
	MinItems *int `schema:"min_items"`
	MaxItems *int `schema:"max_items"`
}

type listFactory struct{}

func (listFactory) OptionSchema() map[string]any {
	return map[string]any{
		"items":     map[string]any{"type": "any"},
		"min_items": map[string]any{"type": "integer"},
		"max_items": map[string]any{"type": "integer"},
	}
}

func (listFactory) New(options map[string]any, c distaff.Compiler) (distaff.DataType, error) {
	common, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o listOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}
	var items []*distaff.Schema
	switch docs := o.Items.(type) {
	case nil:
	case map[string]any:
		s, err := c.Compile(docs)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		items = []*distaff.Schema{s}
	default:
		seq, serr := toSlice(docs)
		if serr != nil {
			return nil, fmt.Errorf("items: expected schema document or list of documents, got %T", docs)
		}
		for i, d := range seq {
			m, ok := toStringMap(d)
			if !ok {
				return nil, fmt.Errorf("items[%d]: expected schema document, got %T", i, d)
			}
			s, err := c.Compile(m)
			if err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}
			items = append(items, s)
		}
	}
	return &listType{
		base:     base{common: common},
		items:    items,
		minItems: o.MinItems,
		maxItems: o.MaxItems,
	}, nil
}

// Coerce accepts sequences only; there is no implicit conversion into a list.
func (t *listType) Coerce(v any) (any, error) {
	if s, err := toSlice(v); err == nil {
		return s, nil
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "list",
	})
}

func (t *listType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "list"})
	}
	if err := t.checkChoices(seq); err != nil {
		return err
	}
	if t.minItems != nil && len(seq) < *t.minItems {
		return distaff.NewValidationError(distaff.CodeTooShort, map[string]string{
			"min":    strconv.Itoa(*t.minItems),
			"length": strconv.Itoa(len(seq)),
		})
	}
	if t.maxItems != nil && len(seq) > *t.maxItems {
		return distaff.NewValidationError(distaff.CodeTooLong, map[string]string{
			"max":    strconv.Itoa(*t.maxItems),
			"length": strconv.Itoa(len(seq)),
		})
	}
	return nil
}

func (t *listType) Traverse(v any, path distaff.Path, errs *distaff.ErrorTree, opt distaff.ProcessOpt) any {
	seq, ok := v.([]any)
	if !ok {
		return v
	}
	if len(t.items) == 0 {
		out := make([]any, len(seq))
		copy(out, seq)
		return out
	}
	out := make([]any, 0, len(seq))
	for i, item := range seq {
		child := t.items[i%len(t.items)]
		ct := distaff.NewErrorTree()
		cv := child.ProcessInto(item, path.Index(i), ct, opt)
		errs.Merge(strconv.Itoa(i), ct)
		out = append(out, cv)
	}
	return out
}
