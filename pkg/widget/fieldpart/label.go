package fieldpart

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Label renders a <label> pointing at the control of a bound attribute.
type Label struct {
	cfg     widget.Config
	binding widget.Binding
	text    *string
	forID   *string
}

// NewLabel returns an unbound Label with opts applied over its defaults.
func NewLabel(opts ...widget.Options) Label {
	return Label{cfg: widget.Layers(opts).Apply(widget.NewConfig().WithTag("label"))}
}

func (l Label) For(form model.FormModel, attribute string) Label {
	l.binding = widget.Bind(form, attribute)
	return l
}

// Text overrides the label resolved from the form model.
func (l Label) Text(text string) Label {
	l.text = &text
	return l
}

// ResolvedText drops a Text override.
func (l Label) ResolvedText() Label {
	l.text = nil
	return l
}

// ForID overrides the "for" attribute, which defaults to the generated id of
// the bound attribute. An empty id removes the attribute.
func (l Label) ForID(id string) Label {
	l.forID = &id
	return l
}

func (l Label) Attributes(attrs html.Attributes) Label {
	l.cfg = l.cfg.WithAttributes(attrs)
	return l
}

func (l Label) Class(class string) Label {
	l.cfg = l.cfg.WithClass(class)
	return l
}

func (l Label) Encode(enabled bool) Label {
	l.cfg = l.cfg.WithEncode(enabled)
	return l
}

func (l Label) Sanitize(enabled bool) Label {
	l.cfg = l.cfg.WithSanitize(enabled)
	return l
}

func (l Label) ID(id string) Label {
	l.cfg = l.cfg.WithID(id)
	return l
}

func (l Label) Tag(name string) Label {
	l.cfg = l.cfg.WithTag(name)
	return l
}

func (l Label) Options(opts ...widget.Options) Label {
	l.cfg = widget.Layers(opts).Apply(l.cfg)
	return l
}

func (l Label) Render() (string, error) {
	resolved, err := l.binding.Resolve()
	if err != nil {
		return "", err
	}
	text := resolved.Label
	if l.text != nil {
		text = *l.text
	}

	forID := l.binding.InputID()
	if l.forID != nil {
		forID = *l.forID
	}
	cfg := l.cfg
	if forID != "" {
		cfg = cfg.WithAttributes(html.Attributes{"for": forID})
	}
	return renderPart(cfg, text)
}
