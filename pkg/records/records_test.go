package records

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	r, err := New(
		Field{Name: "width", Value: 210},
		Field{Name: "height", Value: 297},
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}

	v, ok := r.Get("width")
	if !ok || v != 210 {
		t.Errorf("Get(width) = %v, %v", v, ok)
	}
	if got := r.At(1).Name; got != "height" {
		t.Errorf("At(1).Name = %q, want height", got)
	}
}

func TestNewDuplicate(t *testing.T) {
	_, err := New(
		Field{Name: "a", Value: 1},
		Field{Name: "a", Value: 2},
	)
	if !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("err = %v, want ErrDuplicateField", err)
	}
}

func TestAppendAndSet(t *testing.T) {
	r := &Record{}
	if err := r.Append("name", "ampelmann"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := r.Append("name", "other"); !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate Append err = %v", err)
	}

	if err := r.Set("name", "bollard"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := r.Get("name"); v != "bollard" {
		t.Errorf("Get after Set = %v", v)
	}

	if err := r.Set("missing", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set missing err = %v", err)
	}
}

func TestFieldOrderStable(t *testing.T) {
	r := MustNew(
		Field{Name: "c", Value: 3},
		Field{Name: "a", Value: 1},
		Field{Name: "b", Value: 2},
	)

	// Set must not reorder fields.
	if err := r.Set("a", 10); err != nil {
		t.Fatal(err)
	}

	want := []string{"c", "a", "b"}
	got := r.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
	if r.Index("b") != 2 {
		t.Errorf("Index(b) = %d, want 2", r.Index("b"))
	}
	if r.Index("missing") != -1 {
		t.Errorf("Index(missing) = %d, want -1", r.Index("missing"))
	}
}

func TestPairsRoundTrip(t *testing.T) {
	r := MustNew(
		Field{Name: "z", Value: "last"},
		Field{Name: "a", Value: "first"},
		Field{Name: "m", Value: 13},
	)

	r2, err := FromPairs(r.Pairs())
	if err != nil {
		t.Fatalf("FromPairs error: %v", err)
	}
	if !r.Equal(r2) {
		t.Errorf("round trip mismatch:\n%v\n%v", r, r2)
	}
}

func TestFromMap(t *testing.T) {
	r := FromMap(map[string]any{"b": 2, "a": 1})

	// Sorted-name insertion makes map construction deterministic.
	names := r.Names()
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", names)
	}

	m := r.ToMap()
	if m["a"] != 1 || m["b"] != 2 {
		t.Errorf("ToMap = %v", m)
	}
}

func TestEqual(t *testing.T) {
	a := MustNew(Field{Name: "x", Value: []int{1, 2}})
	b := MustNew(Field{Name: "x", Value: []int{1, 2}})
	c := MustNew(Field{Name: "x", Value: []int{1, 3}})
	d := MustNew(Field{Name: "y", Value: []int{1, 2}})

	if !a.Equal(b) {
		t.Error("a should equal b")
	}
	if a.Equal(c) {
		t.Error("a should not equal c (different value)")
	}
	if a.Equal(d) {
		t.Error("a should not equal d (different name)")
	}
}

func TestClone(t *testing.T) {
	a := MustNew(Field{Name: "x", Value: 1})
	b := a.Clone()

	if err := b.Set("x", 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Get("x"); v != 1 {
		t.Errorf("mutating clone changed original: %v", v)
	}
}

func TestString(t *testing.T) {
	empty := &Record{}
	if empty.String() != "Record()" {
		t.Errorf("empty String = %q", empty.String())
	}

	r := MustNew(Field{Name: "name", Value: "ampelmann"})
	want := "Record(\n    name=\"ampelmann\",\n)"
	if r.String() != want {
		t.Errorf("String = %q, want %q", r.String(), want)
	}
}

func TestList(t *testing.T) {
	l := NewList("ShoppingList", "egg", "flour")
	l.Append("milk")

	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3", l.Len())
	}

	same := NewList("Renamed", "egg", "flour", "milk")
	if !l.Equal(same) {
		t.Error("lists with same items should be equal regardless of name")
	}

	want := "ShoppingList[\n    \"egg\",\n    \"flour\",\n    \"milk\",\n]"
	if l.String() != want {
		t.Errorf("String = %q, want %q", l.String(), want)
	}

	if (&List{}).String() != "List[]" {
		t.Errorf("unnamed empty list String = %q", (&List{}).String())
	}
}
