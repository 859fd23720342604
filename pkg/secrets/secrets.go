package secrets

import (
	"encoding/json"
	"fmt"
)

const redacted = "<redacted>"

// Secret wraps a sensitive string. Every display path (fmt verbs, String,
// GoString, JSON) shows a placeholder; the real value is only reachable
// through Value and Equal. Secrets are comparable and usable as map keys.
type Secret struct {
	value string
}

// New wraps a sensitive value.
func New(value string) Secret {
	return Secret{value: value}
}

// Value returns the real value.
func (s Secret) Value() string { return s.value }

// Equal compares the real value against other in the ordinary way. It is
// not constant-time.
func (s Secret) Equal(other string) bool { return s.value == other }

// String implements fmt.Stringer with a placeholder.
func (s Secret) String() string { return redacted }

// GoString hides the value from %#v.
func (s Secret) GoString() string { return "secrets.Secret(" + redacted + ")" }

// Format hides the value from every fmt verb, including %q and %v.
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", redacted)
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, s.GoString())
			return
		}
		fmt.Fprint(f, redacted)
	default:
		fmt.Fprint(f, redacted)
	}
}

// MarshalJSON hides the value from JSON encoding.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// UnmarshalJSON accepts a JSON string as the real value.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshalling secret: %w", err)
	}
	s.value = value
	return nil
}
