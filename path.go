package distaff

import (
	"strconv"
	"strings"
)

// Path identifies a position in the nested data structure as an ordered
// sequence of keys. Field names and list indices share one string form; the
// empty path denotes the root.
type Path []string

// Key returns a new Path extended with a field name. The receiver is never
// mutated so sibling recursions cannot alias each other's paths.
func (p Path) Key(k string) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = k
	return np
}

// Index returns a new Path extended with a list index.
func (p Path) Index(i int) Path { return p.Key(strconv.Itoa(i)) }

// escapes '~' -> '~0', '/' -> '~1' per RFC 6901
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// String renders the path as a JSON Pointer (for example /items/2/price),
// escaping keys per RFC 6901. The root path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, k := range p {
		b.WriteByte('/')
		pointerEscaper.WriteString(b, k)
	}
	return b.String()
}
