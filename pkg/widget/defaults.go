package widget

import (
	"slices"
	"strings"
)

// DefaultValues maps a widget name (see the Name* constants) to the partial
// options applied whenever a field produces that widget.
type DefaultValues map[string]Options

// Lookup returns the options registered for name.
func (d DefaultValues) Lookup(name string) (Options, bool) {
	if len(d) == 0 {
		return Options{}, false
	}
	opts, ok := d[strings.TrimSpace(name)]
	return opts, ok
}

// Names returns the registered widget names in sorted order.
func (d DefaultValues) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cascade stacks DefaultValues registrations. Later registrations win over
// earlier ones for the same widget and option.
type Cascade []DefaultValues

// With returns a new cascade with values on top.
func (c Cascade) With(values DefaultValues) Cascade {
	if len(values) == 0 {
		return c
	}
	out := make(Cascade, 0, len(c)+1)
	out = append(out, c...)
	return append(out, values)
}

// Layers returns the options registered for name, lowest precedence first.
func (c Cascade) Layers(name string) Layers {
	var out Layers
	for _, values := range c {
		if opts, ok := values.Lookup(name); ok {
			out = append(out, opts)
		}
	}
	return out
}
