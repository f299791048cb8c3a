package distaff

import (
	"errors"
	"sync"
)

// Registry maps type tags to Factory implementations. It is an explicit
// instance constructed by the caller (no process-wide mutable registry) and
// is open for extension: collaborators may register domain-specific types
// without touching the engine.
//
// Registration should finish before compilation starts; compiled meta-schemas
// are cached per tag under a lock so concurrent Compile calls are safe.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	meta      map[string]*Schema
}

// NewRegistry returns an empty registry. Most callers want
// dtype.NewRegistry, which preloads the built-in types.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		meta:      make(map[string]*Schema),
	}
}

// Register binds a type tag to its factory, replacing any previous binding.
func (r *Registry) Register(tag string, f Factory) {
	r.mu.Lock()
	r.factories[tag] = f
	delete(r.meta, tag)
	r.mu.Unlock()
}

// Compile validates doc against the tag's meta-schema and constructs the
// immutable Schema node, recursing into nested schema documents. Schema
// self-validation runs here, once, so processing passes can reuse the
// compiled form without re-checking.
//
// Failure modes: *UnknownTypeError for an unregistered tag (anywhere in the
// tree), *SchemaError for an invalid document.
func (r *Registry) Compile(doc map[string]any) (*Schema, error) {
	return r.compile(doc, true)
}

// MustCompile is Compile panicking on error, for schemas declared at
// program start.
func (r *Registry) MustCompile(doc map[string]any) *Schema {
	s, err := r.Compile(doc)
	if err != nil {
		panic(err)
	}
	return s
}

// CompileJSON decodes a JSON schema document and compiles it.
func (r *Registry) CompileJSON(b []byte) (*Schema, error) {
	doc, err := decodeDocument(DecodeJSON(b))
	if err != nil {
		return nil, err
	}
	return r.Compile(doc)
}

// CompileYAML decodes a YAML schema document and compiles it.
func (r *Registry) CompileYAML(b []byte) (*Schema, error) {
	doc, err := decodeDocument(DecodeYAML(b))
	if err != nil {
		return nil, err
	}
	return r.Compile(doc)
}

func (r *Registry) compile(doc map[string]any, checked bool) (*Schema, error) {
	tag, serr := typeTag(doc)
	if serr != nil {
		return nil, serr
	}
	r.mu.RLock()
	f, ok := r.factories[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownTypeError{Tag: tag}
	}

	if checked {
		meta, err := r.metaSchema(tag, f)
		if err != nil {
			return nil, err
		}
		res, _ := meta.Process(doc, ProcessOpt{Cast: true, Check: true})
		if !res.Errors.Empty() {
			return nil, &SchemaError{Tree: res.Errors}
		}
	}

	dt, err := f.New(doc, boundCompiler{r: r, checked: checked})
	if err != nil {
		var ut *UnknownTypeError
		if errors.As(err, &ut) {
			return nil, ut
		}
		var se *SchemaError
		if errors.As(err, &se) {
			return nil, se
		}
		tree := NewErrorTree()
		tree.AppendError(err)
		return nil, &SchemaError{Tree: tree}
	}
	return &Schema{typeTag: tag, dtype: dt}, nil
}

// metaSchema returns the cached schema-of-schemas for one tag: the common
// options extended with the factory's own option declarations, compiled with
// unknown keys rejected. The meta-schema is itself processed by the same
// engine; it compiles through the unchecked path to terminate the recursion.
func (r *Registry) metaSchema(tag string, f Factory) (*Schema, error) {
	r.mu.RLock()
	cached, ok := r.meta[tag]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	items := map[string]any{
		"type":     map[string]any{"type": "string", "required": true},
		"required": map[string]any{"type": "boolean"},
		"default":  map[string]any{"type": "any"},
		"fillna":   map[string]any{"type": "any"},
		"choices":  map[string]any{"type": "list"},
	}
	for k, v := range f.OptionSchema() {
		items[k] = v
	}
	doc := map[string]any{"type": "dict", "items": items, "unknown": "error"}

	meta, err := r.compile(doc, false)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	// another goroutine may have built it meanwhile; last write wins, the
	// compiled forms are equivalent
	r.meta[tag] = meta
	r.mu.Unlock()
	return meta, nil
}

// boundCompiler hands factories a Compiler that inherits the checked/unchecked
// mode of the enclosing compilation.
type boundCompiler struct {
	r       *Registry
	checked bool
}

func (b boundCompiler) Compile(doc map[string]any) (*Schema, error) {
	return b.r.compile(doc, b.checked)
}

// typeTag extracts the mandatory "type" key.
func typeTag(doc map[string]any) (string, error) {
	raw, ok := doc["type"]
	if !ok {
		tree := NewErrorTree()
		tree.Child("type").AppendIssue(CodeRequired, nil)
		return "", &SchemaError{Tree: tree}
	}
	tag, ok := raw.(string)
	if !ok {
		tree := NewErrorTree()
		tree.Child("type").AppendIssue(CodeInvalidType, map[string]string{"want": "string"})
		return "", &SchemaError{Tree: tree}
	}
	return tag, nil
}

// decodeDocument narrows a decoded value to a schema document shape.
func decodeDocument(v any, err error) (map[string]any, error) {
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		tree := NewErrorTree()
		tree.AppendIssue(CodeInvalidType, map[string]string{"want": "mapping"})
		return nil, &SchemaError{Tree: tree}
	}
	return doc, nil
}
