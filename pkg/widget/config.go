package widget

import "github.com/goliatone/go-formfield/pkg/html"

// Config is the immutable set of render options of one widget instance.
// Every mutator returns a new Config; maps are copied on write so values
// can be shared freely.
type Config struct {
	attributes          html.Attributes
	containerAttributes html.Attributes
	container           bool
	encode              bool
	sanitize            bool
	tag                 string
	id                  string
	template            string
}

// NewConfig returns the baseline every widget starts from: container
// enabled, encoding enabled, no tag.
func NewConfig() Config {
	return Config{container: true, encode: true}
}

func (c Config) Attributes() html.Attributes          { return c.attributes.Clone() }
func (c Config) ContainerAttributes() html.Attributes { return c.containerAttributes.Clone() }
func (c Config) Container() bool                      { return c.container }
func (c Config) Encode() bool                         { return c.encode }
func (c Config) Sanitize() bool                       { return c.sanitize }
func (c Config) Tag() string                          { return c.tag }
func (c Config) ID() string                           { return c.id }
func (c Config) Template() string                     { return c.template }

// WithAttributes merges attrs into the element attributes, attrs winning.
func (c Config) WithAttributes(attrs html.Attributes) Config {
	c.attributes = c.attributes.Merge(attrs)
	return c
}

// ClearAttributes drops every element attribute.
func (c Config) ClearAttributes() Config {
	c.attributes = nil
	return c
}

// WithClass replaces the element class attribute.
func (c Config) WithClass(class string) Config {
	return c.WithAttributes(html.Attributes{"class": class})
}

// WithAddedClass appends class tokens to the element class attribute.
func (c Config) WithAddedClass(classes ...string) Config {
	c.attributes = c.attributes.AddClass(classes...)
	return c
}

// WithContainerAttributes merges attrs into the container attributes.
func (c Config) WithContainerAttributes(attrs html.Attributes) Config {
	c.containerAttributes = c.containerAttributes.Merge(attrs)
	return c
}

// ClearContainerAttributes drops every container attribute.
func (c Config) ClearContainerAttributes() Config {
	c.containerAttributes = nil
	return c
}

// WithContainerClass sets the container class attribute. Whichever of
// WithContainerClass and WithContainerAttributes runs last decides the class.
func (c Config) WithContainerClass(class string) Config {
	return c.WithContainerAttributes(html.Attributes{"class": class})
}

func (c Config) WithContainer(enabled bool) Config {
	c.container = enabled
	return c
}

func (c Config) WithEncode(enabled bool) Config {
	c.encode = enabled
	return c
}

func (c Config) WithSanitize(enabled bool) Config {
	c.sanitize = enabled
	return c
}

// WithTag sets the element tag. An empty name is accepted here and rejected
// by Render with html.ErrEmptyTagName.
func (c Config) WithTag(name string) Config {
	c.tag = name
	return c
}

func (c Config) WithID(id string) Config {
	c.id = id
	return c
}

func (c Config) WithTemplate(template string) Config {
	c.template = template
	return c
}

// ElementAttributes returns the attributes to render on the element: the
// configured attributes plus the id, when one is set.
func (c Config) ElementAttributes() html.Attributes {
	if c.id == "" {
		return c.attributes.Clone()
	}
	return c.attributes.With("id", c.id)
}

// Content prepares text for insertion according to the encode and sanitize
// flags: encoded when encode is on, sanitized when only sanitize is on, raw
// otherwise.
func (c Config) Content(text string) string {
	switch {
	case c.encode:
		return html.Encode(text)
	case c.sanitize:
		return html.Sanitize(text)
	default:
		return text
	}
}
