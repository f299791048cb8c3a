package distaff

// UnknownPolicy controls how a dict schema handles input keys it does not
// declare.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Preserve unknown keys in the output.
	UnknownStrip                            // Drop unknown keys.
	UnknownStrict                           // Reject unknown keys with an error.
)

// ProcessOpt bundles processing options for one engine pass.
type ProcessOpt struct {
	Cast        bool // Attempt coercion to the native type before validation.
	Check       bool // Run validation (required/type-match/choices/type-specific).
	Serialize   bool // Apply each type's ToSerializable transform on the way out.
	FailOnError bool // Turn a non-empty error tree into *Error after the full walk.
}

// NativeOpt is the default option set for ToNative-style processing.
func NativeOpt() ProcessOpt { return ProcessOpt{Cast: true, Check: true} }

// SerializableOpt is the default option set for ToSerializable-style
// processing. Serialization targets should not silently carry invalid data,
// so it fails on any accumulated error.
func SerializableOpt() ProcessOpt { return ProcessOpt{Serialize: true, FailOnError: true} }
