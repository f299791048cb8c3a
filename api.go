package distaff

// Result pairs the best-effort converted value with the error tree for the
// whole pass. Fields that failed keep their pre-failure value; fields that
// succeeded are converted even when siblings fail.
type Result struct {
	Value  any
	Errors *ErrorTree
}

// Process runs one full engine pass over data. The returned error is non-nil
// only when opt.FailOnError is set and the walk accumulated at least one
// failure; the Result (including the partial value) is returned either way.
func (s *Schema) Process(data any, opt ProcessOpt) (Result, error) {
	errs := NewErrorTree()
	v := s.ProcessInto(data, nil, errs, opt)
	res := Result{Value: v, Errors: errs}
	if opt.FailOnError && !errs.Empty() {
		return res, &Error{Tree: errs}
	}
	return res, nil
}

// ToNative converts data to its native representation with coercion and
// validation enabled. It never fails for data errors; callers inspect the
// returned tree.
func (s *Schema) ToNative(data any) (any, *ErrorTree) {
	res, _ := s.Process(data, NativeOpt())
	return res.Value, res.Errors
}

// ToNativeStrict is ToNative with all-or-nothing semantics: any accumulated
// error is returned as *Error (carrying the full tree) after the complete
// walk.
func (s *Schema) ToNativeStrict(data any) (any, error) {
	opt := NativeOpt()
	opt.FailOnError = true
	res, err := s.Process(data, opt)
	return res.Value, err
}

// ToSerializable converts data into serialization-ready form, applying each
// type's ToSerializable transform on the way out. Coercion and validation are
// off by default and the call fails fast on any accumulated error, matching
// the expectation that anything entering a serialization pipeline is already
// valid.
func (s *Schema) ToSerializable(data any) (any, error) {
	res, err := s.Process(data, SerializableOpt())
	return res.Value, err
}

// ToSerializableLax is ToSerializable without the fail-fast policy.
func (s *Schema) ToSerializableLax(data any) (any, *ErrorTree) {
	opt := SerializableOpt()
	opt.FailOnError = false
	res, _ := s.Process(data, opt)
	return res.Value, res.Errors
}

// ToNativeJSON decodes a JSON document and converts it via ToNative. The
// returned error reports malformed JSON only; validation failures live in the
// tree.
func (s *Schema) ToNativeJSON(data []byte) (any, *ErrorTree, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, nil, err
	}
	val, tree := s.ToNative(v)
	return val, tree, nil
}

// ToNativeYAML decodes a YAML document and converts it via ToNative.
func (s *Schema) ToNativeYAML(data []byte) (any, *ErrorTree, error) {
	v, err := DecodeYAML(data)
	if err != nil {
		return nil, nil, err
	}
	val, tree := s.ToNative(v)
	return val, tree, nil
}
