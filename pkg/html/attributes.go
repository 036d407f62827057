package html

import "strings"

// Attributes maps attribute names to their raw (unescaped) values.
type Attributes map[string]string

// Clone returns a copy that can be mutated without affecting the receiver.
// Empty sets clone to nil.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a new set holding the receiver overlaid with every entry of
// other. Values in other win for the same key.
func (a Attributes) Merge(other Attributes) Attributes {
	if len(other) == 0 {
		return a.Clone()
	}
	out := make(Attributes, len(a)+len(other))
	for key, value := range a {
		out[key] = value
	}
	for key, value := range other {
		out[key] = value
	}
	return out
}

// With returns a copy with key set to value.
func (a Attributes) With(key, value string) Attributes {
	return a.Merge(Attributes{key: value})
}

// AddClass returns a copy whose class attribute also holds every token in
// classes. Tokens already present are not duplicated.
func (a Attributes) AddClass(classes ...string) Attributes {
	existing := strings.Fields(a["class"])
	seen := make(map[string]struct{}, len(existing))
	for _, token := range existing {
		seen[token] = struct{}{}
	}
	added := false
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			existing = append(existing, token)
			added = true
		}
	}
	if !added {
		return a.Clone()
	}
	return a.With("class", strings.Join(existing, " "))
}
