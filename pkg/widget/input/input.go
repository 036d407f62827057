package input

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Input types rendered by Input.
const (
	TypeText      = "text"
	TypeEmail     = "email"
	TypePassword  = "password"
	TypeNumber    = "number"
	TypeURL       = "url"
	TypeTelephone = "tel"
	TypeSearch    = "search"
	TypeHidden    = "hidden"
	TypeDate      = "date"
)

// Input renders a void <input> bound to a form attribute. The id, name,
// value and placeholder come from the form model unless overridden.
type Input struct {
	cfg     widget.Config
	binding widget.Binding
	kind    string
}

// New returns an unbound Input of the given type.
func New(kind string, opts ...widget.Options) Input {
	if kind == "" {
		kind = TypeText
	}
	return Input{
		cfg:  widget.Layers(opts).Apply(widget.NewConfig().WithTag("input")),
		kind: kind,
	}
}

func (i Input) For(form model.FormModel, attribute string) Input {
	i.binding = widget.Bind(form, attribute)
	return i
}

func (i Input) Attributes(attrs html.Attributes) Input {
	i.cfg = i.cfg.WithAttributes(attrs)
	return i
}

func (i Input) Class(class string) Input {
	i.cfg = i.cfg.WithClass(class)
	return i
}

// AddClass appends class tokens, keeping the existing ones.
func (i Input) AddClass(classes ...string) Input {
	i.cfg = i.cfg.WithAddedClass(classes...)
	return i
}

func (i Input) ID(id string) Input {
	i.cfg = i.cfg.WithID(id)
	return i
}

// ElementID returns the id the input renders with.
func (i Input) ElementID() string {
	return elementID(i.cfg, i.binding)
}

func (i Input) Options(opts ...widget.Options) Input {
	i.cfg = widget.Layers(opts).Apply(i.cfg)
	return i
}

func (i Input) Render() (string, error) {
	if i.cfg.Tag() == "" {
		return "", html.ErrEmptyTagName
	}
	resolved, err := i.binding.Resolve()
	if err != nil {
		return "", err
	}

	attrs := boundAttributes(i.cfg, i.binding, resolved)
	attrs["type"] = i.kind
	if i.kind != TypePassword {
		if _, ok := attrs["value"]; !ok {
			attrs["value"] = model.FormatValue(resolved.Value)
		}
	}
	return html.Tag(i.cfg.Tag(), attrs, "")
}

// boundAttributes returns the configured attributes completed with the id,
// name and placeholder of the bound attribute. Configured values win.
func boundAttributes(cfg widget.Config, binding widget.Binding, resolved model.Resolution) html.Attributes {
	attrs := cfg.Attributes()
	if attrs == nil {
		attrs = html.Attributes{}
	}
	attrs["id"] = elementID(cfg, binding)
	if _, ok := attrs["name"]; !ok {
		attrs["name"] = binding.InputName()
	}
	if _, ok := attrs["placeholder"]; !ok && resolved.Placeholder != "" {
		attrs["placeholder"] = resolved.Placeholder
	}
	return attrs
}

func elementID(cfg widget.Config, binding widget.Binding) string {
	if id := cfg.ID(); id != "" {
		return id
	}
	if id := cfg.Attributes()["id"]; id != "" {
		return id
	}
	return binding.InputID()
}
