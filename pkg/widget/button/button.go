package button

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Button input types.
const (
	TypeButton = "button"
	TypeSubmit = "submit"
	TypeReset  = "reset"
)

// IDPrefix is the id generator prefix of buttons without an explicit id.
// Generated ids look like "w1-button".
const IDPrefix = "w"

const idSuffix = "-button"

// Spec describes one button: its label plus per-button overrides.
type Spec struct {
	Label      string            `mapstructure:"label" json:"label" yaml:"label"`
	Type       string            `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`
	ID         string            `mapstructure:"id" json:"id,omitempty" yaml:"id,omitempty"`
	Name       string            `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Attributes map[string]string `mapstructure:"attributes" json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Button renders a single void <input type="button|submit|reset">.
type Button struct {
	cfg  widget.Config
	spec Spec
	ids  *html.IDGenerator
}

// New returns a Button for spec with opts applied over its defaults.
func New(spec Spec, opts ...widget.Options) Button {
	return Button{
		cfg:  widget.Layers(opts).Apply(widget.NewConfig().WithTag("input")),
		spec: spec,
	}
}

// IDGenerator replaces html.DefaultIDs as the source of generated ids.
func (b Button) IDGenerator(ids *html.IDGenerator) Button {
	b.ids = ids
	return b
}

func (b Button) Label(label string) Button {
	b.spec.Label = label
	return b
}

func (b Button) Type(kind string) Button {
	b.spec.Type = kind
	return b
}

func (b Button) Attributes(attrs html.Attributes) Button {
	b.cfg = b.cfg.WithAttributes(attrs)
	return b
}

func (b Button) Class(class string) Button {
	b.cfg = b.cfg.WithClass(class)
	return b
}

func (b Button) Options(opts ...widget.Options) Button {
	b.cfg = widget.Layers(opts).Apply(b.cfg)
	return b
}

// Render emits the button. Without an explicit id one is generated, and the
// name defaults to the id.
func (b Button) Render() (string, error) {
	if b.cfg.Tag() == "" {
		return "", html.ErrEmptyTagName
	}

	id := b.spec.ID
	if id == "" {
		id = b.cfg.ID()
	}
	if id == "" {
		id = b.generator().Next(IDPrefix) + idSuffix
	}
	name := b.spec.Name
	if name == "" {
		name = id
	}
	kind := b.spec.Type
	if kind == "" {
		kind = TypeButton
	}

	attrs := b.cfg.Attributes().
		Merge(html.Attributes(b.spec.Attributes)).
		Merge(html.Attributes{
			"type":  kind,
			"id":    id,
			"name":  name,
			"value": b.spec.Label,
		})
	return html.Tag(b.cfg.Tag(), attrs, "")
}

func (b Button) generator() *html.IDGenerator {
	if b.ids != nil {
		return b.ids
	}
	return html.DefaultIDs
}
