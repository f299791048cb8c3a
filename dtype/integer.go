package dtype

import (
	"encoding/json"
	"math"
	"strconv"

	distaff "github.com/reoring/distaff"
)

// integerType coerces to int64. Accepted inputs: Go integer kinds, integral
// floats, json.Number, and base-10 strings.
type integerType struct {
	base
	minimum *int64
	maximum *int64
}

type integerOptions struct {
	Minimum *int64 `schema:"minimum"`
	Maximum *int64 `schema:"maximum"`
}

type integerFactory struct{}

func (integerFactory) OptionSchema() map[string]any {
	return map[string]any{
		"minimum": map[string]any{"type": "integer"},
		"maximum": map[string]any{"type": "integer"},
	}
}

func (integerFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o integerOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}
	return &integerType{base: base{common: c}, minimum: o.Minimum, maximum: o.Maximum}, nil
}

func (t *integerType) Coerce(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), nil
		}
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), nil
		}
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), nil
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, nil
		}
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "integer",
	})
}

func (t *integerType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	n, ok := v.(int64)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "integer"})
	}
	if err := t.checkChoices(n); err != nil {
		return err
	}
	if t.minimum != nil && n < *t.minimum {
		return distaff.NewValidationError(distaff.CodeTooSmall, map[string]string{
			"min":   strconv.FormatInt(*t.minimum, 10),
			"value": strconv.FormatInt(n, 10),
		})
	}
	if t.maximum != nil && n > *t.maximum {
		return distaff.NewValidationError(distaff.CodeTooBig, map[string]string{
			"max":   strconv.FormatInt(*t.maximum, 10),
			"value": strconv.FormatInt(n, 10),
		})
	}
	return nil
}
