package records

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Sentinel errors for record operations.
var (
	// ErrDuplicateField is returned when a field name is already present.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownField is returned when a named field does not exist.
	ErrUnknownField = errors.New("unknown field name")
)

// Field is a single named value within a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered sequence of uniquely named fields.
//
// The zero value is an empty record ready for use. Field names are unique
// and their positions are stable: Append never reorders existing fields and
// Set only replaces values in place.
type Record struct {
	fields []Field
	index  map[string]int
}

// New builds a Record from the given fields.
// It returns an error if two fields share a name.
func New(fields ...Field) (*Record, error) {
	r := &Record{}
	for _, f := range fields {
		if err := r.Append(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is like New but panics on duplicate field names.
// Intended for package-level tables where the names are literals.
func MustNew(fields ...Field) *Record {
	r, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// FromPairs builds a Record from name/value pairs, preserving their order.
func FromPairs(pairs [][2]any) (*Record, error) {
	r := &Record{}
	for _, p := range pairs {
		name, ok := p[0].(string)
		if !ok {
			return nil, fmt.Errorf("field name %v is not a string", p[0])
		}
		if err := r.Append(name, p[1]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// FromMap builds a Record from a plain map. Map iteration order is not
// deterministic, so fields are inserted in sorted-name order.
func FromMap(m map[string]any) *Record {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &Record{}
	for _, name := range names {
		_ = r.Append(name, m[name]) // names from a map are unique
	}
	return r
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Append adds a new field after the existing ones.
// It returns ErrDuplicateField if the name is already present.
func (r *Record) Append(name string, value any) error {
	if _, exists := r.lookup(name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
	return nil
}

// Set replaces the value of an existing field, keeping its position.
// It returns ErrUnknownField if the name is not present.
func (r *Record) Set(name string, value any) error {
	i, ok := r.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	r.fields[i].Value = value
	return nil
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// At returns the field at the given position.
// Like slice indexing, it panics if the index is out of range.
func (r *Record) At(i int) Field {
	return r.fields[i]
}

// Index returns the position of the named field, or -1 if absent.
func (r *Record) Index(name string) int {
	if i, ok := r.lookup(name); ok {
		return i
	}
	return -1
}

// Has reports whether a field with the given name exists.
func (r *Record) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Values returns the field values in insertion order.
func (r *Record) Values() []any {
	values := make([]any, len(r.fields))
	for i, f := range r.fields {
		values[i] = f.Value
	}
	return values
}

// Pairs returns the fields as name/value pairs in insertion order.
// The result round-trips through FromPairs.
func (r *Record) Pairs() [][2]any {
	pairs := make([][2]any, len(r.fields))
	for i, f := range r.fields {
		pairs[i] = [2]any{f.Name, f.Value}
	}
	return pairs
}

// ToMap returns the fields as a plain map. Field order is not representable
// in a map; use Pairs when order matters.
func (r *Record) ToMap() map[string]any {
	m := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}

// Clone returns a shallow copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		fields: make([]Field, len(r.fields)),
		index:  make(map[string]int, len(r.fields)),
	}
	copy(c.fields, r.fields)
	for name, i := range r.index {
		c.index[name] = i
	}
	return c
}

// Equal reports whether both records hold the same field names in the same
// order with equal values. Values compare with reflect.DeepEqual.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.fields {
		of := other.fields[i]
		if f.Name != of.Name || !reflect.DeepEqual(f.Value, of.Value) {
			return false
		}
	}
	return true
}

// String renders the record with one field per line:
//
//	Record(
//	    name="ampelmann",
//	    colour="green",
//	)
func (r *Record) String() string {
	if len(r.fields) == 0 {
		return "Record()"
	}

	var b strings.Builder
	b.WriteString("Record(\n")
	for _, f := range r.fields {
		fmt.Fprintf(&b, "    %s=%#v,\n", f.Name, f.Value)
	}
	b.WriteString(")")
	return b.String()
}

func (r *Record) lookup(name string) (int, bool) {
	if r.index == nil {
		return 0, false
	}
	i, ok := r.index[name]
	return i, ok
}
