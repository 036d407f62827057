package widget

import "github.com/goliatone/go-formfield/pkg/model"

// Re-exported so callers handling widget errors need a single import.
var (
	ErrFormModelNotSet = model.ErrFormModelNotSet
	ErrAttributeNotSet = model.ErrAttributeNotSet
)

// Binding pairs a form model with one of its attributes.
type Binding struct {
	Form      model.FormModel
	Attribute string
}

// Bind returns a Binding for form and attribute.
func Bind(form model.FormModel, attribute string) Binding {
	return Binding{Form: form, Attribute: attribute}
}

// Resolve reads the bound attribute. An unbound Binding fails with
// ErrFormModelNotSet and an empty attribute with ErrAttributeNotSet.
func (b Binding) Resolve() (model.Resolution, error) {
	return model.Resolve(b.Form, b.Attribute)
}

// InputID returns the generated element id of the bound attribute.
func (b Binding) InputID() string {
	return model.InputID(b.Form, b.Attribute)
}

// InputName returns the submitted name of the bound attribute.
func (b Binding) InputName() string {
	return model.InputName(b.Form, b.Attribute)
}
