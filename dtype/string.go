package dtype

import (
	"encoding/json"
	"strconv"

	distaff "github.com/reoring/distaff"
)

// stringType coerces to string. Accepted inputs: strings, integers (decimal
// rendering), json.Number, and booleans ("true"/"false").
type stringType struct {
	base
	minLength *int
	maxLength *int
}

type stringOptions struct {
	MinLength *int `schema:"min_length"`
	MaxLength *int `schema:"max_length"`
}

type stringFactory struct{}

func (stringFactory) OptionSchema() map[string]any {
	return map[string]any{
		"min_length": map[string]any{"type": "integer"},
		"max_length": map[string]any{"type": "integer"},
	}
}

func (stringFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o stringOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}
	return &stringType{base: base{common: c}, minLength: o.MinLength, maxLength: o.MaxLength}, nil
}

func (t *stringType) Coerce(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		if s {
			return "true", nil
		}
		return "false", nil
	}
	if i, ok := asInt64(v); ok {
		return strconv.FormatInt(i, 10), nil
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "string",
	})
}

func (t *stringType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "string"})
	}
	if err := t.checkChoices(s); err != nil {
		return err
	}
	if t.minLength != nil && len(s) < *t.minLength {
		return distaff.NewValidationError(distaff.CodeTooShort, map[string]string{
			"min":    strconv.Itoa(*t.minLength),
			"length": strconv.Itoa(len(s)),
		})
	}
	if t.maxLength != nil && len(s) > *t.maxLength {
		return distaff.NewValidationError(distaff.CodeTooLong, map[string]string{
			"max":    strconv.Itoa(*t.maxLength),
			"length": strconv.Itoa(len(s)),
		})
	}
	return nil
}
