package fieldpart

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Error renders the first validation error of a bound attribute.
type Error struct {
	cfg     widget.Config
	binding widget.Binding
	message *string
}

// NewError returns an unbound Error with opts applied over its defaults.
func NewError(opts ...widget.Options) Error {
	return Error{cfg: widget.Layers(opts).Apply(widget.NewConfig().WithTag("div"))}
}

func (e Error) For(form model.FormModel, attribute string) Error {
	e.binding = widget.Bind(form, attribute)
	return e
}

// Message overrides the error resolved from the form model.
func (e Error) Message(message string) Error {
	e.message = &message
	return e
}

func (e Error) Attributes(attrs html.Attributes) Error {
	e.cfg = e.cfg.WithAttributes(attrs)
	return e
}

func (e Error) Class(class string) Error {
	e.cfg = e.cfg.WithClass(class)
	return e
}

func (e Error) Encode(enabled bool) Error {
	e.cfg = e.cfg.WithEncode(enabled)
	return e
}

// Sanitize filters unencoded messages through the HTML sanitizer.
func (e Error) Sanitize(enabled bool) Error {
	e.cfg = e.cfg.WithSanitize(enabled)
	return e
}

func (e Error) ID(id string) Error {
	e.cfg = e.cfg.WithID(id)
	return e
}

func (e Error) Tag(name string) Error {
	e.cfg = e.cfg.WithTag(name)
	return e
}

func (e Error) Options(opts ...widget.Options) Error {
	e.cfg = widget.Layers(opts).Apply(e.cfg)
	return e
}

func (e Error) Render() (string, error) {
	resolved, err := e.binding.Resolve()
	if err != nil {
		return "", err
	}
	message := resolved.Error
	if e.message != nil {
		message = *e.message
	}
	return renderPart(e.cfg, message)
}
