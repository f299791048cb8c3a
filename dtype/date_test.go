package dtype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate_DefaultFormats(t *testing.T) {
	s := compile(t, map[string]any{"type": "date"})

	v := native(t, s, "2016-01-01")
	require.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), v)

	// RFC 3339 is the second default format
	v = native(t, s, "2016-01-01T12:30:00Z")
	require.Equal(t, time.Date(2016, 1, 1, 12, 30, 0, 0, time.UTC), v)
}

func TestDate_CustomFormats(t *testing.T) {
	s := compile(t, map[string]any{
		"type":    "date",
		"formats": []any{"02/01/2006", "2006-01-02"},
	})

	require.Equal(t, time.Date(2016, 3, 15, 0, 0, 0, 0, time.UTC), native(t, s, "15/03/2016"))
	require.Equal(t, time.Date(2016, 3, 15, 0, 0, 0, 0, time.UTC), native(t, s, "2016-03-15"))

	// the first format is the serialization layout
	wire, err := s.ToSerializable(native(t, s, "2016-03-15"))
	require.NoError(t, err)
	require.Equal(t, "15/03/2016", wire)
}

func TestDate_NoFormatMatches(t *testing.T) {
	s := compile(t, map[string]any{"type": "date"})

	iss := nativeErrs(t, s, "15/03/2016")
	require.Contains(t, iss[0].Message, "does not match any of the expected formats")
}

func TestDate_NonStringInput(t *testing.T) {
	s := compile(t, map[string]any{"type": "date"})

	nativeErrs(t, s, 20160101)

	// a time.Time value passes through coercion untouched
	now := time.Now()
	require.Equal(t, now, native(t, s, now))
}

func TestDate_SerializeNormalizesToUTC(t *testing.T) {
	s := compile(t, map[string]any{
		"type":    "date",
		"formats": []any{time.RFC3339},
	})

	v := native(t, s, "2016-01-01T09:00:00+09:00")
	wire, err := s.ToSerializable(v)
	require.NoError(t, err)
	require.Equal(t, "2016-01-01T00:00:00Z", wire)
}
