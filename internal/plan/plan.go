package plan

import (
	"encoding/json"
	"fmt"
)

// Value is one field's content: either free text (scalar field) or a named
// set of subfield texts (group field). The shape is decided once, when the
// JSON boundary decodes it; downstream code never re-checks.
type Value struct {
	text  string
	sub   map[string]string
	group bool
}

// Scalar wraps free text as a field value.
func Scalar(text string) Value {
	return Value{text: text}
}

// Group wraps subfield texts as a field value.
func Group(sub map[string]string) Value {
	return Value{sub: sub, group: true}
}

// IsGroup reports whether the value holds subfields.
func (v Value) IsGroup() bool { return v.group }

// Text returns the scalar text ("" for group values).
func (v Value) Text() string { return v.text }

// Sub returns the subfield texts (nil for scalar values).
func (v Value) Sub() map[string]string { return v.sub }

// Empty reports whether the value carries no content at all.
func (v Value) Empty() bool {
	if v.group {
		for _, s := range v.sub {
			if s != "" {
				return false
			}
		}
		return true
	}
	return v.text == ""
}

// MarshalJSON encodes scalar values as strings and group values as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.group {
		return json.Marshal(v.sub)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a string or a string-valued object.
func (v *Value) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = Scalar(text)
		return nil
	}
	var sub map[string]string
	if err := json.Unmarshal(data, &sub); err == nil {
		*v = Group(sub)
		return nil
	}
	return fmt.Errorf("plan value must be a string or an object of strings")
}

// Data is one day's lesson-plan content keyed by field name. It is supplied
// wholesale per fill invocation and treated as an immutable snapshot.
type Data map[string]Value

// Get returns the value for a field name.
func (d Data) Get(name string) (Value, bool) {
	v, ok := d[name]
	return v, ok
}

// ScalarText returns the scalar text stored under name, or "" when the field
// is absent or a group.
func (d Data) ScalarText(name string) string {
	v, ok := d[name]
	if !ok || v.IsGroup() {
		return ""
	}
	return v.Text()
}
