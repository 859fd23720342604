package records

import (
	"fmt"
	"strings"
)

// List is an ordered collection of values with a display name.
// It behaves like a plain slice; the name only affects String.
type List struct {
	// Name is used as the prefix in String. Empty means "List".
	Name string

	// Items holds the values in order.
	Items []any
}

// NewList creates a List with the given display name and items.
func NewList(name string, items ...any) *List {
	return &List{Name: name, Items: items}
}

// Append adds items to the end of the list.
func (l *List) Append(items ...any) {
	l.Items = append(l.Items, items...)
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.Items) }

// Equal reports whether both lists hold equal items in the same order.
// The display name does not take part in equality, matching value semantics
// where the name is presentation only.
func (l *List) Equal(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.Items) != len(other.Items) {
		return false
	}
	for i, item := range l.Items {
		if fmt.Sprintf("%#v", item) != fmt.Sprintf("%#v", other.Items[i]) {
			return false
		}
	}
	return true
}

// String renders the list with its name and one item per line:
//
//	ShoppingList[
//	    "egg",
//	    "flour",
//	]
func (l *List) String() string {
	name := l.Name
	if name == "" {
		name = "List"
	}

	if len(l.Items) == 0 {
		return name + "[]"
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString("[\n")
	for _, item := range l.Items {
		fmt.Fprintf(&b, "    %#v,\n", item)
	}
	b.WriteString("]")
	return b.String()
}
