package fill

import "github.com/kgplan/kgplan/internal/plan"

// compositeSep joins a group field's name to a subfield name in flattened
// keys, e.g. "室内区域游戏-游戏区域".
const compositeSep = "-"

// LabelMap is the flat label→text lookup built from nested plan data. Keys
// iterate in insertion order, which Flatten makes deterministic (field order,
// then declared subfield order), so the resolver's last-resort suffix match
// always picks the same entry for the same plan.
type LabelMap struct {
	keys   []string
	values map[string]string
}

// NewLabelMap returns an empty map. Mostly useful in tests; production maps
// come from Flatten.
func NewLabelMap() *LabelMap {
	return &LabelMap{values: make(map[string]string)}
}

// Set adds or replaces an entry, keeping first-insertion key order.
func (m *LabelMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the text stored under key.
func (m *LabelMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (m *LabelMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *LabelMap) Len() int {
	return len(m.keys)
}

// HasParent reports whether label is the parent part of any composite key,
// i.e. whether some "label-subfield" entry exists. The table walker uses
// this to recognize section-header rows.
func (m *LabelMap) HasParent(label string) bool {
	if label == "" {
		return false
	}
	prefix := label + compositeSep
	for _, k := range m.keys {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// Flatten converts nested plan data into a LabelMap. Group fields contribute
// one "parent-subfield" entry per non-empty subfield and never a bare parent
// entry; non-empty scalar fields contribute their bare name. Empty values
// are omitted entirely: absence means "nothing to fill", not an error. The
// computed week/date fields are excluded — the orchestrator writes those
// into the header directly.
func Flatten(data plan.Data) *LabelMap {
	m := NewLabelMap()
	for _, field := range plan.FieldOrder {
		if plan.ComputedField(field.Name) {
			continue
		}
		value, ok := data.Get(field.Name)
		if !ok {
			continue
		}
		if value.IsGroup() {
			sub := value.Sub()
			for _, name := range field.Subfields {
				if text := sub[name]; text != "" {
					m.Set(field.Name+compositeSep+name, text)
				}
			}
			continue
		}
		if text := value.Text(); text != "" {
			m.Set(field.Name, text)
		}
	}
	return m
}
