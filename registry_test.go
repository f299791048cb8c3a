package distaff_test

import (
	"errors"
	"strings"
	"testing"

	distaff "github.com/reoring/distaff"
	"github.com/reoring/distaff/dtype"
)

func TestCompile_UnknownType(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{"type": "decimal"})
	var ut *distaff.UnknownTypeError
	if !errors.As(err, &ut) || ut.Tag != "decimal" {
		t.Fatalf("expected UnknownTypeError for decimal, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown type 'decimal'") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCompile_UnknownTypePropagatesFromNestedSchema(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{
		"type": "dict",
		"items": map[string]any{
			"a": map[string]any{"type": "decimal"},
		},
	})
	var ut *distaff.UnknownTypeError
	if !errors.As(err, &ut) {
		t.Fatalf("nested unknown type must propagate immediately, got %v", err)
	}
}

func TestCompile_UnknownOptionIsSchemaError(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{"type": "integer", "maximvm": 10})
	var se *distaff.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(se.Error(), "unknown item 'maximvm'") {
		t.Fatalf("unexpected message: %q", se.Error())
	}
}

func TestCompile_MissingType(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{"required": true})
	var se *distaff.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	sub, ok := se.Tree.Items["type"]
	if !ok || len(sub.Errors) != 1 {
		t.Fatalf("expected one error under type, got %v", se.Tree.Flatten())
	}
	f := sub.Errors[0]
	if f.Code != distaff.CodeRequired || f.Message != "a value is required" {
		t.Fatalf("unexpected failure: %+v", f)
	}
}

func TestCompile_BadOptionValue(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{"type": "string", "min_length": "abc"})
	var se *distaff.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for non-integer min_length, got %v", err)
	}
}

func TestCompile_BadUnknownPolicy(t *testing.T) {
	reg := dtype.NewRegistry()

	_, err := reg.Compile(map[string]any{"type": "dict", "unknown": "explode"})
	var se *distaff.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for unsupported policy, got %v", err)
	}
}

func TestCompileYAML(t *testing.T) {
	reg := dtype.NewRegistry()

	schema, err := reg.CompileYAML([]byte(`
type: dict
items:
  id:
    type: integer
    required: true
  name:
    type: string
    min_length: 1
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	value, errs := schema.ToNative(map[string]any{"id": "3", "name": "ok"})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Flatten())
	}
	if value.(map[string]any)["id"] != int64(3) {
		t.Fatalf("expected 3, got %v", value)
	}
}

func TestCompileJSON(t *testing.T) {
	reg := dtype.NewRegistry()

	schema, err := reg.CompileJSON([]byte(`{
		"type": "integer",
		"minimum": 1,
		"maximum": 10
	}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	_, errs := schema.ToNative(0)
	if errs.Empty() {
		t.Fatalf("expected too-small error")
	}
}

func TestCompile_NonMappingDocument(t *testing.T) {
	reg := dtype.NewRegistry()

	if _, err := reg.CompileJSON([]byte(`[1, 2]`)); err == nil {
		t.Fatalf("expected error for non-mapping schema document")
	}
}

// registerable custom type: the registry is open for extension without
// touching the engine.
type upperFactory struct{}

func (upperFactory) OptionSchema() map[string]any { return nil }

func (upperFactory) New(options map[string]any, _ distaff.Compiler) (distaff.DataType, error) {
	c := distaff.NewCommon()
	if v, ok := options["required"]; ok {
		c.Required, _ = v.(bool)
	}
	return upperType{common: c}, nil
}

type upperType struct{ common distaff.Common }

func (t upperType) Common() distaff.Common { return t.common }
func (t upperType) IsNA(v any) bool        { return distaff.IsAbsentOrNil(v) }

func (t upperType) Coerce(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, distaff.NewCoercionError(distaff.CodeCoerceError, map[string]string{"want": "string"})
	}
	return strings.ToUpper(s), nil
}

func (t upperType) Validate(v any) error { return nil }

func (t upperType) Traverse(v any, _ distaff.Path, _ *distaff.ErrorTree, _ distaff.ProcessOpt) any {
	return v
}

func (t upperType) ToSerializable(v any) any { return v }

func TestRegistry_CustomType(t *testing.T) {
	reg := dtype.NewRegistry()
	reg.Register("upper", upperFactory{})

	schema, err := reg.Compile(map[string]any{
		"type":  "list",
		"items": map[string]any{"type": "upper"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	value, errs := schema.ToNative([]any{"ab", "cd"})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Flatten())
	}
	if value.([]any)[0] != "AB" || value.([]any)[1] != "CD" {
		t.Fatalf("custom coercion not applied: %v", value)
	}
}
