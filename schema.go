package distaff

// Schema is one compiled, immutable schema node: a type tag bound to its
// DataType implementation. Compile validates the raw document once; the
// compiled form is meant to be reused across many processing passes.
type Schema struct {
	typeTag string
	dtype   DataType
}

// Type returns the node's type tag.
func (s *Schema) Type() string { return s.typeTag }

// DataType returns the node's plugin implementation.
func (s *Schema) DataType() DataType { return s.dtype }

// ProcessInto runs the engine for one node, writing failures into errs and
// returning the converted (or pre-failure) value. Errors are communicated
// solely through errs, never through the return value.
//
// The pass per node is: default substitution (absent input), fillna
// substitution (NA input), coercion, validation, recursive traversal,
// serialization transform. A coercion or validation failure is recorded at
// this node and halts the node's remaining steps without aborting siblings.
func (s *Schema) ProcessInto(v any, path Path, errs *ErrorTree, opt ProcessOpt) any {
	dt := s.dtype
	c := dt.Common()

	if IsAbsent(v) && !IsAbsent(c.Default) {
		v = c.Default
	}
	if dt.IsNA(v) && !IsAbsent(c.FillNA) {
		v = c.FillNA
	}
	na := dt.IsNA(v)

	if opt.Cast && !na {
		cv, err := dt.Coerce(v)
		if err != nil {
			// A value that cannot become the right type is never checked
			// against constraints or traversed.
			errs.AppendError(err)
			return v
		}
		v = cv
	}

	if opt.Check {
		if err := dt.Validate(v); err != nil {
			errs.AppendError(err)
			return v
		}
	}

	if !na {
		v = dt.Traverse(v, path, errs, opt)
		if opt.Serialize {
			v = dt.ToSerializable(v)
		}
	}
	return v
}
