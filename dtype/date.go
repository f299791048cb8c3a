package dtype

import (
	"time"

	distaff "github.com/reoring/distaff"
)

// defaultDateFormats are tried in order; the first match wins. The first
// entry is also the serialization layout.
var defaultDateFormats = []string{"2006-01-02", time.RFC3339}

// dateType coerces format-listed strings into time.Time and serializes back
// through the first format, UTC-normalized so round-trips are stable.
type dateType struct {
	base
	formats []string
}

type dateOptions struct {
	Formats []string `schema:"formats"`
}

type dateFactory struct{}

func (dateFactory) OptionSchema() map[string]any {
	return map[string]any{
		"formats": map[string]any{"type": "list"},
	}
}

func (dateFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c, err := commonFromOptions(options)
	if err != nil {
		return nil, err
	}
	var o dateOptions
	if err := decodeOptions(options, &o); err != nil {
		return nil, err
	}
	formats := o.Formats
	if len(formats) == 0 {
		formats = defaultDateFormats
	}
	return &dateType{base: base{common: c}, formats: formats}, nil
}

func (t *dateType) Coerce(v any) (any, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range t.formats {
			if parsed, err := time.Parse(layout, d); err == nil {
				return parsed, nil
			}
		}
		return nil, distaff.NewCoercionError(distaff.CodeInvalidFormat, map[string]string{
			"value": displayValue(d),
		})
	}
	return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{
		"value": displayValue(v),
		"want":  "date",
	})
}

func (t *dateType) Validate(v any) error {
	na := t.IsNA(v)
	if err := t.checkRequired(na); err != nil {
		return err
	}
	if na {
		return nil
	}
	d, ok := v.(time.Time)
	if !ok {
		return distaff.NewValidationError(distaff.CodeInvalidType, map[string]string{"want": "date"})
	}
	return t.checkChoices(d)
}

func (t *dateType) ToSerializable(v any) any {
	if d, ok := v.(time.Time); ok {
		return d.UTC().Format(t.formats[0])
	}
	return v
}
