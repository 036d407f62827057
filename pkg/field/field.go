package field

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
	"github.com/goliatone/go-formfield/pkg/widget/button"
	"github.com/goliatone/go-formfield/pkg/widget/fieldpart"
	"github.com/goliatone/go-formfield/pkg/widget/input"
)

var (
	// ErrNoControl is returned by Render before a control was chosen.
	ErrNoControl = errors.New("field: no control to render")
	// ErrUnknownControl is returned by Widget for names it cannot produce.
	ErrUnknownControl = errors.New("field: unknown control")
)

// Field wraps one control with a container, a label, a hint and an error
// block. Field-wide configuration applies to the container and to the
// control; DefaultValues entries registered for the control's widget name
// override it, and options passed when choosing the control override both.
type Field struct {
	cfg      widget.Config
	defaults widget.Cascade
	ids      *html.IDGenerator
	classes  partClasses
	label    *string
	hint     *string
	control  control
}

type partClasses struct {
	label   string
	hint    string
	error   string
	invalid string
	valid   string
}

// control is the widget a field renders, captured when it is chosen.
type control struct {
	name      string
	kind      string
	form      model.FormModel
	attribute string
	buttons   []button.Spec
	opts      widget.Layers
}

// Option configures a Field at construction.
type Option func(*Field)

// WithOptions layers field-wide options.
func WithOptions(opts ...widget.Options) Option {
	return func(f *Field) {
		f.cfg = widget.Layers(opts).Apply(f.cfg)
	}
}

// WithDefaultValues registers default values, see Field.DefaultValues.
func WithDefaultValues(values widget.DefaultValues) Option {
	return func(f *Field) {
		f.defaults = f.defaults.With(values)
	}
}

// WithIDGenerator replaces html.DefaultIDs for generated button ids.
func WithIDGenerator(ids *html.IDGenerator) Option {
	return func(f *Field) {
		f.ids = ids
	}
}

// New returns a Field with a div container.
func New(opts ...Option) Field {
	f := Field{cfg: widget.NewConfig().WithTag("div")}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// Options layers field-wide options over the current configuration.
func (f Field) Options(opts ...widget.Options) Field {
	f.cfg = widget.Layers(opts).Apply(f.cfg)
	return f
}

// Attributes merges attributes applied to the control.
func (f Field) Attributes(attrs html.Attributes) Field {
	f.cfg = f.cfg.WithAttributes(attrs)
	return f
}

// Class sets the class of the control.
func (f Field) Class(class string) Field {
	f.cfg = f.cfg.WithClass(class)
	return f
}

func (f Field) Container(enabled bool) Field {
	f.cfg = f.cfg.WithContainer(enabled)
	return f
}

func (f Field) ContainerAttributes(attrs html.Attributes) Field {
	f.cfg = f.cfg.WithContainerAttributes(attrs)
	return f
}

func (f Field) ContainerClass(class string) Field {
	f.cfg = f.cfg.WithContainerClass(class)
	return f
}

// Template replaces the layout of bound controls. The layout sees the
// rendered parts as label, input, hint and error.
func (f Field) Template(source string) Field {
	f.cfg = f.cfg.WithTemplate(source)
	return f
}

// DefaultValues registers options per widget name. A later registration
// wins over an earlier one for the same option.
func (f Field) DefaultValues(values widget.DefaultValues) Field {
	f.defaults = f.defaults.With(values)
	return f
}

func (f Field) IDGenerator(ids *html.IDGenerator) Field {
	f.ids = ids
	return f
}

func (f Field) LabelClass(class string) Field {
	f.classes.label = class
	return f
}

func (f Field) HintClass(class string) Field {
	f.classes.hint = class
	return f
}

func (f Field) ErrorClass(class string) Field {
	f.classes.error = class
	return f
}

// InvalidClass is added to the control when the attribute has an error.
func (f Field) InvalidClass(class string) Field {
	f.classes.invalid = class
	return f
}

// ValidClass is added to the control when the form was validated and the
// attribute has no error.
func (f Field) ValidClass(class string) Field {
	f.classes.valid = class
	return f
}

// Label overrides the label text resolved from the form model.
func (f Field) Label(text string) Field {
	f.label = &text
	return f
}

// Hint overrides the hint text resolved from the form model.
func (f Field) Hint(text string) Field {
	f.hint = &text
	return f
}

// ButtonGroup renders buttons as a group. Definitions of the "buttonGroup"
// options configure the group; their own Definitions reach every button.
func (f Field) ButtonGroup(buttons []button.Spec, opts ...widget.Options) Field {
	f.control = control{
		name:    widget.NameButtonGroup,
		buttons: append([]button.Spec(nil), buttons...),
		opts:    widget.Layers(nil).With(opts...),
	}
	return f
}

func (f Field) SubmitButton(label string, opts ...widget.Options) Field {
	return f.single(widget.NameSubmitButton, button.Spec{Label: label, Type: button.TypeSubmit}, opts)
}

func (f Field) ResetButton(label string, opts ...widget.Options) Field {
	return f.single(widget.NameResetButton, button.Spec{Label: label, Type: button.TypeReset}, opts)
}

func (f Field) single(name string, spec button.Spec, opts []widget.Options) Field {
	f.control = control{
		name:    name,
		buttons: []button.Spec{spec},
		opts:    widget.Layers(nil).With(opts...),
	}
	return f
}

func (f Field) Text(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameText, input.TypeText, form, attribute, opts)
}

func (f Field) Email(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameEmail, input.TypeEmail, form, attribute, opts)
}

func (f Field) Password(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NamePassword, input.TypePassword, form, attribute, opts)
}

func (f Field) Number(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameNumber, input.TypeNumber, form, attribute, opts)
}

func (f Field) URL(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameURL, input.TypeURL, form, attribute, opts)
}

func (f Field) Telephone(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameTelephone, input.TypeTelephone, form, attribute, opts)
}

func (f Field) Search(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameSearch, input.TypeSearch, form, attribute, opts)
}

// Hidden renders the input alone, without label, hint or error.
func (f Field) Hidden(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameHidden, input.TypeHidden, form, attribute, opts)
}

func (f Field) Date(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameDate, input.TypeDate, form, attribute, opts)
}

func (f Field) TextArea(form model.FormModel, attribute string, opts ...widget.Options) Field {
	return f.bound(widget.NameTextArea, "", form, attribute, opts)
}

var boundControls = map[string]string{
	widget.NameText:      input.TypeText,
	widget.NameEmail:     input.TypeEmail,
	widget.NamePassword:  input.TypePassword,
	widget.NameNumber:    input.TypeNumber,
	widget.NameURL:       input.TypeURL,
	widget.NameTelephone: input.TypeTelephone,
	widget.NameSearch:    input.TypeSearch,
	widget.NameHidden:    input.TypeHidden,
	widget.NameDate:      input.TypeDate,
	widget.NameTextArea:  "",
}

// Widget chooses a bound control by widget name, for callers that only know
// the name at runtime.
func (f Field) Widget(name string, form model.FormModel, attribute string, opts ...widget.Options) (Field, error) {
	kind, ok := boundControls[name]
	if !ok {
		return Field{}, fmt.Errorf("%w %q", ErrUnknownControl, name)
	}
	return f.bound(name, kind, form, attribute, opts), nil
}

// Controls lists the names accepted by Widget.
func Controls() []string {
	return slices.Sorted(maps.Keys(boundControls))
}

func (f Field) bound(name, kind string, form model.FormModel, attribute string, opts []widget.Options) Field {
	f.control = control{
		name:      name,
		kind:      kind,
		form:      form,
		attribute: attribute,
		opts:      widget.Layers(nil).With(opts...),
	}
	return f
}

// Render produces the field markup.
func (f Field) Render() (string, error) {
	c := f.control
	if c.name == "" {
		return "", ErrNoControl
	}

	layers := f.defaults.Layers(c.name).With(c.opts...)
	outer := layers.Apply(f.cfg)
	inner := widget.Layers{{Attributes: outer.Attributes()}}.With(layers.Definitions()...)

	var (
		content string
		err     error
	)
	switch c.name {
	case widget.NameButtonGroup:
		content, err = button.NewGroup(inner...).Buttons(c.buttons...).IDGenerator(f.ids).Render()
	case widget.NameSubmitButton, widget.NameResetButton:
		content, err = button.New(c.buttons[0], inner...).IDGenerator(f.ids).Render()
	default:
		content, err = f.renderBound(c, outer, inner)
	}
	if err != nil {
		return "", err
	}

	if !outer.Container() {
		return content, nil
	}
	return html.Block(outer.Tag(), outer.ContainerAttributes(), content)
}

func (f Field) renderBound(c control, outer widget.Config, inner widget.Layers) (string, error) {
	resolved, err := model.Resolve(c.form, c.attribute)
	if err != nil {
		return "", err
	}
	if id := outer.ID(); id != "" {
		inner = widget.Layers{{ID: widget.String(id)}}.With(inner...)
	}
	state := f.stateClass(resolved)

	var (
		markup  string
		inputID string
	)
	if c.name == widget.NameTextArea {
		area := input.NewTextArea(inner...).For(c.form, c.attribute)
		if state != "" {
			area = area.AddClass(state)
		}
		inputID = area.ElementID()
		markup, err = area.Render()
	} else {
		in := input.New(c.kind, inner...).For(c.form, c.attribute)
		if state != "" {
			in = in.AddClass(state)
		}
		inputID = in.ElementID()
		markup, err = in.Render()
	}
	if err != nil {
		return "", err
	}
	if c.name == widget.NameHidden {
		return markup, nil
	}

	label := fieldpart.NewLabel(f.partLayers(f.classes.label, widget.NameLabel)...).
		For(c.form, c.attribute).
		ForID(inputID)
	if f.label != nil {
		label = label.Text(*f.label)
	}
	labelHTML, err := label.Render()
	if err != nil {
		return "", err
	}

	hint := fieldpart.NewHint(f.partLayers(f.classes.hint, widget.NameHint)...).For(c.form, c.attribute)
	if f.hint != nil {
		hint = hint.Text(*f.hint)
	}
	hintHTML, err := hint.Render()
	if err != nil {
		return "", err
	}

	errorHTML, err := fieldpart.NewError(f.partLayers(f.classes.error, widget.NameError)...).
		For(c.form, c.attribute).
		Render()
	if err != nil {
		return "", err
	}

	return renderLayout(outer.Template(), map[string]string{
		"label": labelHTML,
		"input": markup,
		"hint":  hintHTML,
		"error": errorHTML,
	})
}

func (f Field) stateClass(resolved model.Resolution) string {
	switch {
	case resolved.HasError():
		return f.classes.invalid
	case resolved.Validated:
		return f.classes.valid
	default:
		return ""
	}
}

// partLayers stacks the field-wide class of a part under its DefaultValues
// entries.
func (f Field) partLayers(class, name string) widget.Layers {
	var base widget.Layers
	if class != "" {
		base = widget.Layers{{Class: widget.String(class)}}
	}
	return base.With(f.defaults.Layers(name)...)
}
