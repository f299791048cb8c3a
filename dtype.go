package distaff

// Common holds the options every schema node recognizes regardless of type.
// Default and FillNA are Absent (not nil) when undeclared, since explicit
// null is itself a legal substitution value.
type Common struct {
	Required bool
	Default  any
	FillNA   any
	Choices  []any
}

// NewCommon returns a Common with both substitution slots unset.
func NewCommon() Common { return Common{Default: Absent, FillNA: Absent} }

// DataType is the capability contract every schema node type implements.
// Implementations must be read-only after construction; one DataType may be
// shared by many concurrent processing passes.
type DataType interface {
	// Common exposes the node's required/default/fillna/choices options to
	// the engine.
	Common() Common

	// IsNA reports whether v carries no meaningful data. The default rule is
	// "absent or nil"; types may narrow it (the any type only treats Absent
	// as NA).
	IsNA(v any) bool

	// Coerce converts v's runtime representation into the native type,
	// returning *CoercionError when the conversion is impossible. It is only
	// invoked for non-NA values when the caller requested casting.
	Coerce(v any) (any, error)

	// Validate checks v against the declared constraints, returning
	// *ValidationError on the first violation: NA while required, runtime
	// type mismatch, choices non-membership, or a type-specific bound.
	Validate(v any) error

	// Traverse recurses into composite values, processing each child against
	// its schema via Schema.ProcessInto and merging child errors into errs
	// under the child's key. Scalar types return v unchanged.
	Traverse(v any, path Path, errs *ErrorTree, opt ProcessOpt) any

	// ToSerializable converts a native value into a representation suitable
	// for a downstream serializer (dates become formatted strings); identity
	// for types with no such transform.
	ToSerializable(v any) any
}

// Factory builds DataType instances from a raw option map. One Factory is
// registered per type tag.
type Factory interface {
	// OptionSchema declares the type-specific option fields as raw schema
	// documents keyed by option name. It extends the common option
	// meta-schema during schema self-validation; nil means common-only.
	OptionSchema() map[string]any

	// New constructs the DataType for one schema node. options is the full
	// schema document (the "type" key included); nested schema documents are
	// compiled through c so meta-validation policy is inherited.
	New(options map[string]any, c Compiler) (DataType, error)
}

// Compiler compiles nested schema documents on behalf of composite type
// factories.
type Compiler interface {
	Compile(doc map[string]any) (*Schema, error)
}
