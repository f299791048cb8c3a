package dtype_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	distaff "github.com/reoring/distaff"
)

func userSchema(unknown string) map[string]any {
	doc := map[string]any{
		"type": "dict",
		"items": map[string]any{
			"id": map[string]any{"type": "integer"},
		},
	}
	if unknown != "" {
		doc["unknown"] = unknown
	}
	return doc
}

func TestDict_UnknownPassthroughIsDefault(t *testing.T) {
	s := compile(t, userSchema(""))

	v := native(t, s, map[string]any{"id": "1", "extra": true})
	require.Empty(t, cmp.Diff(map[string]any{"id": int64(1), "extra": true}, v))
}

func TestDict_UnknownStrip(t *testing.T) {
	s := compile(t, userSchema("strip"))

	v := native(t, s, map[string]any{"id": "1", "extra": true})
	require.Empty(t, cmp.Diff(map[string]any{"id": int64(1)}, v))
}

func TestDict_UnknownError(t *testing.T) {
	s := compile(t, userSchema("error"))

	_, errs := s.ToNative(map[string]any{"id": "1", "b": 1, "a": 2})
	// unknown keys are reported on the dict node itself, in sorted order
	require.Len(t, errs.Errors, 2)
	require.Equal(t, "unknown item 'a'", errs.Errors[0].Message)
	require.Equal(t, "unknown item 'b'", errs.Errors[1].Message)
	require.Equal(t, distaff.CodeUnknownKey, errs.Errors[0].Code)
	require.Equal(t, map[string]string{"key": "a"}, errs.Errors[0].Params)
}

func TestDict_NestedDefaultsMaterialize(t *testing.T) {
	s := compile(t, map[string]any{
		"type": "dict",
		"items": map[string]any{
			"name":   map[string]any{"type": "string"},
			"active": map[string]any{"type": "boolean", "default": true},
		},
	})

	v := native(t, s, map[string]any{"name": "x"})
	require.Empty(t, cmp.Diff(map[string]any{"name": "x", "active": true}, v))
}

func TestDict_AbsentOptionalFieldStaysAbsent(t *testing.T) {
	s := compile(t, map[string]any{
		"type": "dict",
		"items": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	})

	v := native(t, s, map[string]any{})
	require.Empty(t, cmp.Diff(map[string]any{}, v))
}

func TestDict_ExplicitNullIsKept(t *testing.T) {
	s := compile(t, map[string]any{
		"type": "dict",
		"items": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	})

	// null is NA but present: no error without required, and the key survives
	v := native(t, s, map[string]any{"name": nil})
	require.Empty(t, cmp.Diff(map[string]any{"name": nil}, v))
}

func TestDict_NoItemsSchemaPassesEverythingThrough(t *testing.T) {
	s := compile(t, map[string]any{"type": "dict", "unknown": "error"})

	v := native(t, s, map[string]any{"a": 1, "b": 2})
	require.Empty(t, cmp.Diff(map[string]any{"a": 1, "b": 2}, v))
}

func TestDict_ScalarInputDoesNotCoerce(t *testing.T) {
	s := compile(t, userSchema(""))
	nativeErrs(t, s, 42)
}

func TestDict_NestedRequiredErrorPath(t *testing.T) {
	s := compile(t, map[string]any{
		"type": "dict",
		"items": map[string]any{
			"meta": map[string]any{
				"type": "dict",
				"items": map[string]any{
					"id": map[string]any{"type": "integer", "required": true},
				},
				"default": map[string]any{},
			},
		},
	})

	_, errs := s.ToNative(map[string]any{})
	iss := errs.Flatten()
	require.Len(t, iss, 1)
	require.Equal(t, "/meta/id", iss[0].Path)
	require.Equal(t, "a value is required", iss[0].Message)
}
