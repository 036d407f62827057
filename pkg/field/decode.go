package field

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/widget"
)

// NewFromMap builds a Field from a loosely typed configuration map, as read
// from YAML or JSON. Besides the widget options it accepts "defaultValues"
// and the part classes (labelClass, hintClass, errorClass, invalidClass,
// validClass). Call-style keys such as "containerClass()" are accepted.
//
// Map keys carry no order, so options are applied in a fixed order rather
// than as written: when both "containerAttributes" and "containerClass" set
// the container class, "containerClass" wins. Chain mutators or pass
// separate Options layers when call order matters.
func NewFromMap(raw map[string]any, opts ...Option) (Field, error) {
	f := New(opts...)
	rest := make(map[string]any, len(raw))
	for key, value := range raw {
		arg, err := widget.UnwrapArgument(key, value)
		if err != nil {
			return Field{}, fmt.Errorf("field: %w", err)
		}
		switch name := widget.NormalizeKey(key); name {
		case "defaultValues":
			entries, err := widget.StringMap(arg)
			if err != nil {
				return Field{}, fmt.Errorf("field: defaultValues: %w", err)
			}
			values, err := widget.DecodeDefaultValues(entries)
			if err != nil {
				return Field{}, fmt.Errorf("field: %w", err)
			}
			f = f.DefaultValues(values)
		case "labelClass", "hintClass", "errorClass", "invalidClass", "validClass":
			class, ok := arg.(string)
			if !ok {
				return Field{}, fmt.Errorf("field: %s expects a string, got %T", name, arg)
			}
			f = f.withPartClass(name, class)
		default:
			rest[key] = value
		}
	}

	fieldOpts, err := widget.DecodeOptions(rest)
	if err != nil {
		return Field{}, fmt.Errorf("field: %w", err)
	}
	return f.Options(fieldOpts), nil
}

func (f Field) withPartClass(name, class string) Field {
	switch name {
	case "labelClass":
		return f.LabelClass(class)
	case "hintClass":
		return f.HintClass(class)
	case "errorClass":
		return f.ErrorClass(class)
	case "invalidClass":
		return f.InvalidClass(class)
	default:
		return f.ValidClass(class)
	}
}
