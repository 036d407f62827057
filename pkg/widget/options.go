package widget

import "github.com/goliatone/go-formfield/pkg/html"

// Options is a partial configuration. Nil fields are left untouched when the
// options are applied. Definitions holds the options a composite widget
// forwards to the widgets it builds instead of applying them to itself.
type Options struct {
	Attributes          map[string]string `mapstructure:"attributes" json:"attributes,omitempty"`
	Class               *string           `mapstructure:"class" json:"class,omitempty"`
	ContainerAttributes map[string]string `mapstructure:"containerAttributes" json:"containerAttributes,omitempty"`
	ContainerClass      *string           `mapstructure:"containerClass" json:"containerClass,omitempty"`
	Container           *bool             `mapstructure:"container" json:"container,omitempty"`
	Encode              *bool             `mapstructure:"encode" json:"encode,omitempty"`
	Sanitize            *bool             `mapstructure:"sanitize" json:"sanitize,omitempty"`
	Tag                 *string           `mapstructure:"tag" json:"tag,omitempty"`
	ID                  *string           `mapstructure:"id" json:"id,omitempty"`
	Template            *string           `mapstructure:"template" json:"template,omitempty"`
	Definitions         *Options          `mapstructure:"definitions" json:"definitions,omitempty"`
}

// Apply layers o on top of c. Maps merge key by key; within one layer the
// order is attributes, class, containerAttributes, containerClass, then the
// scalar options. Definitions are not applied.
func (o Options) Apply(c Config) Config {
	if len(o.Attributes) > 0 {
		c = c.WithAttributes(html.Attributes(o.Attributes))
	}
	if o.Class != nil {
		c = c.WithClass(*o.Class)
	}
	if len(o.ContainerAttributes) > 0 {
		c = c.WithContainerAttributes(html.Attributes(o.ContainerAttributes))
	}
	if o.ContainerClass != nil {
		c = c.WithContainerClass(*o.ContainerClass)
	}
	if o.Container != nil {
		c = c.WithContainer(*o.Container)
	}
	if o.Encode != nil {
		c = c.WithEncode(*o.Encode)
	}
	if o.Sanitize != nil {
		c = c.WithSanitize(*o.Sanitize)
	}
	if o.Tag != nil {
		c = c.WithTag(*o.Tag)
	}
	if o.ID != nil {
		c = c.WithID(*o.ID)
	}
	if o.Template != nil {
		c = c.WithTemplate(*o.Template)
	}
	return c
}

// IsZero reports whether o sets nothing at all.
func (o Options) IsZero() bool {
	return len(o.Attributes) == 0 && o.Class == nil &&
		len(o.ContainerAttributes) == 0 && o.ContainerClass == nil &&
		o.Container == nil && o.Encode == nil && o.Sanitize == nil &&
		o.Tag == nil && o.ID == nil && o.Template == nil &&
		o.Definitions == nil
}

// Layers is an ordered stack of Options; later layers win.
type Layers []Options

// Apply applies every layer to c in order.
func (l Layers) Apply(c Config) Config {
	for _, layer := range l {
		c = layer.Apply(c)
	}
	return c
}

// Definitions collects the nested Definitions of every layer, keeping the
// layer order, so the same precedence holds one level down.
func (l Layers) Definitions() Layers {
	var out Layers
	for _, layer := range l {
		if layer.Definitions != nil {
			out = append(out, *layer.Definitions)
		}
	}
	return out
}

// With returns a new stack with extra appended on top.
func (l Layers) With(extra ...Options) Layers {
	out := make(Layers, 0, len(l)+len(extra))
	out = append(out, l...)
	return append(out, extra...)
}

// Helpers for building Options literals.

func String(value string) *string { return &value }
func Bool(value bool) *bool       { return &value }
