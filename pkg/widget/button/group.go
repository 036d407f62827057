package button

import (
	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Group renders a list of buttons, one per line, inside a container div.
// Attributes configured on the group are applied to every button; the
// Definitions of the group options are forwarded to each button. A forwarded
// id only applies to a group of one; with more buttons, ids come from Spec.ID
// or the generator so they stay unique.
type Group struct {
	cfg     widget.Config
	buttons []Spec
	child   widget.Layers
	ids     *html.IDGenerator
}

// NewGroup returns an empty Group with opts applied over its defaults.
func NewGroup(opts ...widget.Options) Group {
	layers := widget.Layers(opts)
	return Group{
		cfg:   layers.Apply(widget.NewConfig().WithTag("div")),
		child: layers.Definitions(),
	}
}

// Buttons replaces the button list.
func (g Group) Buttons(specs ...Spec) Group {
	g.buttons = append([]Spec(nil), specs...)
	return g
}

func (g Group) IDGenerator(ids *html.IDGenerator) Group {
	g.ids = ids
	return g
}

// Attributes merges attributes applied to every button.
func (g Group) Attributes(attrs html.Attributes) Group {
	g.cfg = g.cfg.WithAttributes(attrs)
	return g
}

func (g Group) Container(enabled bool) Group {
	g.cfg = g.cfg.WithContainer(enabled)
	return g
}

func (g Group) ContainerAttributes(attrs html.Attributes) Group {
	g.cfg = g.cfg.WithContainerAttributes(attrs)
	return g
}

func (g Group) ContainerClass(class string) Group {
	g.cfg = g.cfg.WithContainerClass(class)
	return g
}

// Options layers opts over the group; their Definitions go to the buttons.
func (g Group) Options(opts ...widget.Options) Group {
	layers := widget.Layers(opts)
	g.cfg = layers.Apply(g.cfg)
	g.child = g.child.With(layers.Definitions()...)
	return g
}

func (g Group) Render() (string, error) {
	if g.cfg.Tag() == "" {
		return "", html.ErrEmptyTagName
	}

	shared := widget.Options{Attributes: g.cfg.Attributes()}
	layers := widget.Layers{shared}.With(g.child...)
	if len(g.buttons) > 1 {
		layers = withoutIDs(layers)
	}

	rendered := make([]string, 0, len(g.buttons))
	for _, spec := range g.buttons {
		out, err := New(spec, layers...).IDGenerator(g.ids).Render()
		if err != nil {
			return "", err
		}
		rendered = append(rendered, out)
	}

	content := html.Lines(rendered...)
	if !g.cfg.Container() {
		return content, nil
	}
	return html.Block(g.cfg.Tag(), g.cfg.ContainerAttributes(), content)
}

func withoutIDs(layers widget.Layers) widget.Layers {
	out := make(widget.Layers, len(layers))
	for idx, layer := range layers {
		layer.ID = nil
		out[idx] = layer
	}
	return out
}
