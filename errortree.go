package distaff

import (
	"errors"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/distaff/i18n"
)

// Failure is one recorded issue at a node: the stable code, the rendered
// message, and the raw parameters the message was built from. Code and
// Params are empty for wrapped foreign errors.
type Failure struct {
	Code    string
	Message string
	Params  map[string]string
}

// ErrorTree accumulates validation failures while mirroring the nested shape
// of the schema being processed. Local failures at a node append to Errors;
// failures inside a nested field or list element live under Items, keyed by
// field name or decimal index.
//
// A tree is exclusively owned by one top-level processing pass and is threaded
// by reference through the recursive descent; it is not safe for concurrent
// mutation.
type ErrorTree struct {
	Errors []Failure
	Items  map[string]*ErrorTree
}

// NewErrorTree returns an empty accumulator.
func NewErrorTree() *ErrorTree { return &ErrorTree{} }

// Empty reports whether no error was recorded anywhere, locally or nested.
func (t *ErrorTree) Empty() bool {
	if t == nil {
		return true
	}
	if len(t.Errors) > 0 {
		return false
	}
	for _, c := range t.Items {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Append records a local message-only failure at this node.
func (t *ErrorTree) Append(msg string) { t.Errors = append(t.Errors, Failure{Message: msg}) }

// AppendIssue records a local failure with its message rendered from the
// i18n catalog, keeping code and params alongside.
func (t *ErrorTree) AppendIssue(code string, params map[string]string) {
	t.Errors = append(t.Errors, Failure{Code: code, Message: i18n.T(code, params), Params: params})
}

// AppendError records err at this node. Coercion and validation errors keep
// their code and params; any other error contributes its message only. nil
// is ignored.
func (t *ErrorTree) AppendError(err error) {
	if err == nil {
		return
	}
	var ce *CoercionError
	if errors.As(err, &ce) {
		t.Errors = append(t.Errors, Failure{Code: ce.Code, Message: ce.Message, Params: ce.Params})
		return
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Errors = append(t.Errors, Failure{Code: ve.Code, Message: ve.Message, Params: ve.Params})
		return
	}
	t.Append(err.Error())
}

// Child returns the nested accumulator for key, creating it when needed.
func (t *ErrorTree) Child(key string) *ErrorTree {
	if t.Items == nil {
		t.Items = make(map[string]*ErrorTree)
	}
	c, ok := t.Items[key]
	if !ok {
		c = NewErrorTree()
		t.Items[key] = c
	}
	return c
}

// Index returns the nested accumulator for a list position.
func (t *ErrorTree) Index(i int) *ErrorTree { return t.Child(strconv.Itoa(i)) }

// Merge attaches child under key. Empty children are dropped so all-clear
// traversals leave no trace in the tree.
func (t *ErrorTree) Merge(key string, child *ErrorTree) {
	if child.Empty() {
		return
	}
	if t.Items == nil {
		t.Items = make(map[string]*ErrorTree)
	}
	t.Items[key] = child
}

// Flatten walks the tree depth-first in sorted key order and returns every
// failure with its JSON Pointer path.
func (t *ErrorTree) Flatten() []Issue {
	var out []Issue
	t.flattenInto(nil, &out)
	return out
}

func (t *ErrorTree) flattenInto(path Path, out *[]Issue) {
	if t == nil {
		return
	}
	for _, f := range t.Errors {
		*out = append(*out, Issue{Path: path.String(), Code: f.Code, Message: f.Message, Params: f.Params})
	}
	keys := make([]string, 0, len(t.Items))
	for k := range t.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Items[k].flattenInto(path.Key(k), out)
	}
}

// MarshalJSON serializes the tree as {"errors": [...], "items": {...}},
// omitting either member when empty. An all-clear tree serializes as {}.
// Errors serialize as their rendered messages; codes and params are an
// in-process concern.
func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 2)
	if len(t.Errors) > 0 {
		msgs := make([]string, len(t.Errors))
		for i, f := range t.Errors {
			msgs[i] = f.Message
		}
		out["errors"] = msgs
	}
	if len(t.Items) > 0 {
		items := make(map[string]*ErrorTree, len(t.Items))
		for k, c := range t.Items {
			if !c.Empty() {
				items[k] = c
			}
		}
		if len(items) > 0 {
			out["items"] = items
		}
	}
	return json.Marshal(out)
}
