package dtype_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInteger_Coercions(t *testing.T) {
	s := compile(t, map[string]any{"type": "integer"})

	cases := []struct {
		name string
		in   any
		want int64
	}{
		{"int", 42, 42},
		{"int64", int64(-7), -7},
		{"decimal string", "42", 42},
		{"negative string", "-3", -3},
		{"integral float", float64(3), 3},
		{"json number", json.Number("9007199254740993"), 9007199254740993},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, native(t, s, tc.in))
		})
	}
}

func TestInteger_RejectedInputs(t *testing.T) {
	s := compile(t, map[string]any{"type": "integer"})

	for _, in := range []any{"abc", "3.5", 3.5, true, []any{1}} {
		nativeErrs(t, s, in)
	}
}

func TestInteger_Bounds(t *testing.T) {
	s := compile(t, map[string]any{"type": "integer", "minimum": 1, "maximum": 10})

	require.Equal(t, int64(1), native(t, s, 1))
	require.Equal(t, int64(10), native(t, s, 10))

	iss := nativeErrs(t, s, 0)
	require.Equal(t, "value should be at least 1, got 0", iss[0].Message)

	iss = nativeErrs(t, s, 11)
	require.Equal(t, "value should be at most 10, got 11", iss[0].Message)
}

func TestInteger_Choices(t *testing.T) {
	s := compile(t, map[string]any{"type": "integer", "choices": []any{1, 2, 3}})

	// coercion runs first, so the string form of an allowed value passes
	require.Equal(t, int64(2), native(t, s, "2"))

	iss := nativeErrs(t, s, 4)
	require.Contains(t, iss[0].Message, "not one of the allowed choices")
}
