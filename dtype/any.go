package dtype

import (
	distaff "github.com/reoring/distaff"
)

// anyType passes values through untouched. Only absence counts as NA:
// explicit null is a legitimate present value, so fillna never fires and
// required is satisfied by null.
type anyType struct {
	base
}

type anyFactory struct{}

func (anyFactory) OptionSchema() map[string]any { return nil }

func (anyFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	return &anyType{base: base{common: c}}, nil
}

func (t *anyType) IsNA(v any) bool { return distaff.IsAbsent(v) }

func (t *anyType) Coerce(v any) (any, error) { return v, nil }

func (t *anyType) Validate(v any) error {
	return t.checkRequired(t.IsNA(v))
}
