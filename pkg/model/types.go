package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormModelNotSet is returned when a widget resolves an attribute
	// before a form model was bound.
	ErrFormModelNotSet = errors.New("Failed to create widget because form model is not set.")
	// ErrAttributeNotSet is returned when a widget was bound with an empty
	// attribute name.
	ErrAttributeNotSet = errors.New(`Failed to create widget because "attribute" is not set.`)
	// ErrUnknownAttribute is returned when the form model does not declare
	// the requested attribute.
	ErrUnknownAttribute = errors.New("model: unknown attribute")
)

// FormModel is the contract widgets use to read a bound attribute.
type FormModel interface {
	// FormName prefixes generated input names and ids. It can be empty.
	FormName() string
	HasAttribute(attribute string) bool
	AttributeValue(attribute string) (any, error)
	AttributeLabel(attribute string) string
	AttributeHint(attribute string) string
	AttributePlaceholder(attribute string) string
	// FirstError returns the first validation error for attribute, or "".
	FirstError(attribute string) string
	// Validated reports whether validation ran, so renderers can tell
	// "valid" apart from "not checked yet".
	Validated() bool
}

// Attribute declares one attribute of a Form.
type Attribute struct {
	Name        string   `json:"name" yaml:"name"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Hint        string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value       any      `json:"value,omitempty" yaml:"value,omitempty"`
	Errors      []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Message keys resolved by LocalizeForm. The plain fields above are the
	// fallback when a key has no translation.
	LabelKey       string `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	HintKey        string `json:"hintKey,omitempty" yaml:"hintKey,omitempty"`
	PlaceholderKey string `json:"placeholderKey,omitempty" yaml:"placeholderKey,omitempty"`
}

// Form is a map-backed FormModel. Attributes keep their declaration order.
type Form struct {
	Name        string      `json:"name" yaml:"name"`
	Attributes  []Attribute `json:"attributes" yaml:"attributes"`
	IsValidated bool        `json:"validated,omitempty" yaml:"validated,omitempty"`
}

var _ FormModel = (*Form)(nil)

// NewForm builds a Form from attribute declarations.
func NewForm(name string, attributes ...Attribute) *Form {
	return &Form{
		Name:       name,
		Attributes: append([]Attribute(nil), attributes...),
	}
}

func (f *Form) FormName() string {
	if f == nil {
		return ""
	}
	return f.Name
}

func (f *Form) HasAttribute(attribute string) bool {
	_, ok := f.lookup(attribute)
	return ok
}

func (f *Form) AttributeValue(attribute string) (any, error) {
	attr, ok := f.lookup(attribute)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAttribute, attribute)
	}
	return attr.Value, nil
}

// AttributeLabel falls back to a label derived from the attribute name.
func (f *Form) AttributeLabel(attribute string) string {
	attr, ok := f.lookup(attribute)
	if !ok {
		return ""
	}
	if label := strings.TrimSpace(attr.Label); label != "" {
		return label
	}
	return GenerateLabel(attr.Name)
}

func (f *Form) AttributeHint(attribute string) string {
	attr, _ := f.lookup(attribute)
	return attr.Hint
}

func (f *Form) AttributePlaceholder(attribute string) string {
	attr, _ := f.lookup(attribute)
	return attr.Placeholder
}

func (f *Form) FirstError(attribute string) string {
	attr, _ := f.lookup(attribute)
	for _, message := range attr.Errors {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (f *Form) Validated() bool {
	return f != nil && f.IsValidated
}

// AddError records a validation error and marks the form as validated.
func (f *Form) AddError(attribute, message string) error {
	if f == nil {
		return ErrFormModelNotSet
	}
	for idx := range f.Attributes {
		if f.Attributes[idx].Name == attribute {
			f.Attributes[idx].Errors = append(f.Attributes[idx].Errors, message)
			f.IsValidated = true
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownAttribute, attribute)
}

// SetValue replaces the current value of attribute.
func (f *Form) SetValue(attribute string, value any) error {
	if f == nil {
		return ErrFormModelNotSet
	}
	for idx := range f.Attributes {
		if f.Attributes[idx].Name == attribute {
			f.Attributes[idx].Value = value
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownAttribute, attribute)
}

func (f *Form) lookup(attribute string) (Attribute, bool) {
	if f == nil {
		return Attribute{}, false
	}
	for _, attr := range f.Attributes {
		if attr.Name == attribute {
			return attr, true
		}
	}
	return Attribute{}, false
}
