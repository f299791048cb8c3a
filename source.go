package distaff

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/distaff/i18n"
)

// DecodeJSON decodes one JSON document into the dynamic value shape the
// engine walks (map[string]any / []any / json.Number / string / bool / nil).
// Numbers stay json.Number so integer precision survives until coercion.
func DecodeJSON(b []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(b))
}

// DecodeJSONReader decodes one JSON document from r.
func DecodeJSONReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T(CodeParseError, nil), err)
	}
	return v, nil
}

// DecodeYAML decodes one YAML document. Mappings arrive as map[string]any,
// sequences as []any, scalars in their YAML-native Go types.
func DecodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T(CodeParseError, nil), err)
	}
	return v, nil
}
