package fill

import "strings"

// Resolve looks up the text for a (normalized) target label, preferring the
// parent-qualified entry when a parent section context is known:
//
//  1. "{parent}-{target}" when parent is non-empty,
//  2. the bare target,
//  3. any key with suffix "-{target}", first match in key order.
//
// The suffix fallback exists for callers that have genuinely lost context.
// When several parent sections share a subfield name it is ambiguous by
// construction and arbitrarily returns the first entry in key order, so
// callers must supply parent whenever a collision is possible.
//
// A miss returns ok=false, never an error: absent content is normal.
func Resolve(m *LabelMap, target, parent string) (string, bool) {
	_, value, ok := ResolveEntry(m, target, parent)
	return value, ok
}

// ResolveEntry is Resolve plus the key that matched, for callers that track
// which entries have already been consumed.
func ResolveEntry(m *LabelMap, target, parent string) (key, value string, ok bool) {
	if target == "" {
		return "", "", false
	}
	if parent != "" {
		k := parent + compositeSep + target
		if v, ok := m.Get(k); ok {
			return k, v, true
		}
	}
	if v, ok := m.Get(target); ok {
		return target, v, true
	}
	suffix := compositeSep + target
	for _, k := range m.Keys() {
		if strings.HasSuffix(k, suffix) {
			v, _ := m.Get(k)
			return k, v, true
		}
	}
	return "", "", false
}
