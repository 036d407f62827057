package input

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// TextArea renders a <textarea> whose content is the encoded attribute value.
type TextArea struct {
	cfg     widget.Config
	binding widget.Binding
}

// NewTextArea returns an unbound TextArea.
func NewTextArea(opts ...widget.Options) TextArea {
	return TextArea{cfg: widget.Layers(opts).Apply(widget.NewConfig().WithTag("textarea"))}
}

func (t TextArea) For(form model.FormModel, attribute string) TextArea {
	t.binding = widget.Bind(form, attribute)
	return t
}

func (t TextArea) Attributes(attrs html.Attributes) TextArea {
	t.cfg = t.cfg.WithAttributes(attrs)
	return t
}

func (t TextArea) AddClass(classes ...string) TextArea {
	t.cfg = t.cfg.WithAddedClass(classes...)
	return t
}

func (t TextArea) ElementID() string {
	return elementID(t.cfg, t.binding)
}

func (t TextArea) Options(opts ...widget.Options) TextArea {
	t.cfg = widget.Layers(opts).Apply(t.cfg)
	return t
}

func (t TextArea) Render() (string, error) {
	if t.cfg.Tag() == "" {
		return "", html.ErrEmptyTagName
	}
	resolved, err := t.binding.Resolve()
	if err != nil {
		return "", err
	}
	attrs := boundAttributes(t.cfg, t.binding, resolved)
	return html.Tag(t.cfg.Tag(), attrs, html.Encode(model.FormatValue(resolved.Value)))
}
