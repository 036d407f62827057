package model

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Resolution is everything a widget needs to know about a bound attribute.
type Resolution struct {
	Attribute   string
	Value       any
	Label       string
	Hint        string
	Placeholder string
	Error       string
	// Validated mirrors FormModel.Validated at resolution time.
	Validated bool
}

// HasError reports whether the attribute carries a validation error.
func (r Resolution) HasError() bool {
	return r.Error != ""
}

// Resolve reads attribute from form. A nil form, including a nil pointer
// stored in the interface, fails with ErrFormModelNotSet, an empty attribute with ErrAttributeNotSet and an
// undeclared one with ErrUnknownAttribute.
func Resolve(form FormModel, attribute string) (Resolution, error) {
	if IsNil(form) {
		return Resolution{}, ErrFormModelNotSet
	}
	if attribute == "" {
		return Resolution{}, ErrAttributeNotSet
	}
	if !form.HasAttribute(attribute) {
		return Resolution{}, fmt.Errorf("%w %q", ErrUnknownAttribute, attribute)
	}
	value, err := form.AttributeValue(attribute)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{
		Attribute:   attribute,
		Value:       value,
		Label:       form.AttributeLabel(attribute),
		Hint:        form.AttributeHint(attribute),
		Placeholder: form.AttributePlaceholder(attribute),
		Error:       form.FirstError(attribute),
		Validated:   form.Validated(),
	}, nil
}

// IsNil reports whether form is nil or wraps a nil pointer.
func IsNil(form FormModel) bool {
	if form == nil {
		return true
	}
	if f, ok := form.(*Form); ok {
		return f == nil
	}
	v := reflect.ValueOf(form)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

var idUnsafeChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// InputID returns the element id for attribute: the lower-cased form name
// and attribute joined with a dash, unsafe characters replaced by dashes.
func InputID(form FormModel, attribute string) string {
	raw := attribute
	if form != nil {
		if name := strings.TrimSpace(form.FormName()); name != "" {
			raw = name + "-" + attribute
		}
	}
	return idUnsafeChars.ReplaceAllString(strings.ToLower(raw), "-")
}

// InputName returns the submitted name for attribute, "Form[attribute]" when
// the form has a name and the bare attribute otherwise.
func InputName(form FormModel, attribute string) string {
	if form != nil {
		if name := strings.TrimSpace(form.FormName()); name != "" {
			return name + "[" + attribute + "]"
		}
	}
	return attribute
}

// FormatValue converts an attribute value into its attribute/content text.
// Nil renders as the empty string; booleans as "1" and "0".
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
