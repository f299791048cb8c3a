package dtype

import (
	distaff "github.com/reoring/distaff"
)

// booleanType coerces token strings into bool. Token matching is
// case-sensitive and exact.
type booleanType struct {
	base
	trueValues  []string
	falseValues []string
}

type booleanOptions struct {
	TrueValues  []string `schema:"true_values"`
	FalseValues []string `schema:"false_values"`
}

type booleanFactory struct{}

func (booleanFactory) OptionSchema() map[string]any {
	return map[string]any{
		"true_values":  map[string]any{"type": "list"},
		"false_values": map[string]any{"type": "list"},
	}
}

func (booleanFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o booleanOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}
	t := &booleanType{
		base:        base{common: c},
		trueValues:  o.TrueValues,
		falseValues: o.FalseValues,
	}
	if t.trueValues == nil {
		t.trueValues = []string{"true", "1"}
	}
	if t.falseValues == nil {
		t.falseValues = []string{"false", "0"}
	}
	return t, nil
}

func (t *booleanType) Coerce(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		for _, tok := range t.trueValues {
			if b == tok {
				return true, nil
			}
		}
		for _, tok := range t.falseValues {
			if b == tok {
				return false, nil
			}
		}
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "boolean",
	})
}

func (t *booleanType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "boolean"})
	}
	return t.checkChoices(b)
}
