package dtype

import (
	distaff "github.com/reoring/distaff"
)

// NewRegistry returns a distaff.Registry preloaded with the built-in types.
func NewRegistry() *distaff.Registry {
	r := distaff.NewRegistry()
	r.Register("boolean", booleanFactory{})
	r.Register("integer", integerFactory{})
	r.Register("string", stringFactory{})
	r.Register("date", dateFactory{})
	r.Register("list", listFactory{})
	r.Register("dict", dictFactory{})
	r.Register("any", anyFactory{})
	return r
}
