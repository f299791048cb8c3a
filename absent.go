package distaff

// absentValue is the unique marker for "the caller supplied nothing". It is
// distinct from nil: nil is an explicit null that may still trigger fillna
// substitution, while Absent is what default substitution keys on.
type absentValue struct{}

func (absentValue) String() string { return "ABSENT" }

// MarshalJSON renders Absent as null so a stray sentinel never corrupts output.
func (absentValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Absent is the singleton missing-value sentinel.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// IsAbsentOrNil reports whether v carries no meaningful data under the default
// NA rule (absent or explicit null). Individual types may override the rule;
// the "any" type treats null as a present value.
func IsAbsentOrNil(v any) bool {
	return v == nil || IsAbsent(v)
}
