package dtype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	distaff "github.com/reoring/distaff"
	"github.com/reoring/distaff/dtype"
)

func compile(t *testing.T, doc map[string]any) *distaff.Schema {
	t.Helper()
	s, err := dtype.NewRegistry().Compile(doc)
	require.NoError(t, err)
	return s
}

// native runs a ToNative pass and requires it to be clean.
func native(t *testing.T, s *distaff.Schema, data any) any {
	t.Helper()
	v, errs := s.ToNative(data)
	require.True(t, errs.Empty(), "unexpected errors: %v", errs.Flatten())
	return v
}

// nativeErrs runs a ToNative pass and requires at least one error.
func nativeErrs(t *testing.T, s *distaff.Schema, data any) []distaff.Issue {
	t.Helper()
	_, errs := s.ToNative(data)
	iss := errs.Flatten()
	require.NotEmpty(t, iss)
	return iss
}
