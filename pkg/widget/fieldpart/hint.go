package fieldpart

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Hint renders the hint text of a bound attribute, by default as a div.
type Hint struct {
	cfg     widget.Config
	binding widget.Binding
	text    *string
}

// NewHint returns an unbound Hint with opts applied over its defaults.
func NewHint(opts ...widget.Options) Hint {
	return Hint{cfg: widget.Layers(opts).Apply(widget.NewConfig().WithTag("div"))}
}

// For binds the hint to attribute of form.
func (h Hint) For(form model.FormModel, attribute string) Hint {
	h.binding = widget.Bind(form, attribute)
	return h
}

// Text overrides the hint resolved from the form model.
func (h Hint) Text(text string) Hint {
	h.text = &text
	return h
}

// ResolvedText drops a Text override so the form model hint is used again.
func (h Hint) ResolvedText() Hint {
	h.text = nil
	return h
}

func (h Hint) Attributes(attrs html.Attributes) Hint {
	h.cfg = h.cfg.WithAttributes(attrs)
	return h
}

func (h Hint) Class(class string) Hint {
	h.cfg = h.cfg.WithClass(class)
	return h
}

func (h Hint) Encode(enabled bool) Hint {
	h.cfg = h.cfg.WithEncode(enabled)
	return h
}

// Sanitize filters unencoded text through the HTML sanitizer.
func (h Hint) Sanitize(enabled bool) Hint {
	h.cfg = h.cfg.WithSanitize(enabled)
	return h
}

func (h Hint) ID(id string) Hint {
	h.cfg = h.cfg.WithID(id)
	return h
}

// Tag sets the wrapping tag. An empty name fails at Render.
func (h Hint) Tag(name string) Hint {
	h.cfg = h.cfg.WithTag(name)
	return h
}

// Options layers opts over the current configuration.
func (h Hint) Options(opts ...widget.Options) Hint {
	h.cfg = widget.Layers(opts).Apply(h.cfg)
	return h
}

func (h Hint) Render() (string, error) {
	resolved, err := h.binding.Resolve()
	if err != nil {
		return "", err
	}
	text := resolved.Hint
	if h.text != nil {
		text = *h.text
	}
	return renderPart(h.cfg, text)
}

func renderPart(cfg widget.Config, text string) (string, error) {
	if cfg.Tag() == "" {
		return "", html.ErrEmptyTagName
	}
	if text == "" {
		return "", nil
	}
	return html.Tag(cfg.Tag(), cfg.ElementAttributes(), cfg.Content(text))
}
