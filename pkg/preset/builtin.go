package preset

import "github.com/goliatone/go-formfield/pkg/widget"

// Built-in preset names.
const (
	Bootstrap5 = "bootstrap5"
	Bulma      = "bulma"
)

// NewDefaultRegistry returns a registry holding the built-in presets.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(bootstrap5())
	r.MustRegister(bulma())
	return r
}

// inputs lists the widget names styled like a text input.
var inputs = []string{
	widget.NameText,
	widget.NameEmail,
	widget.NamePassword,
	widget.NameNumber,
	widget.NameURL,
	widget.NameTelephone,
	widget.NameSearch,
	widget.NameDate,
	widget.NameTextArea,
}

func withInputClass(values widget.DefaultValues, class string) widget.DefaultValues {
	for _, name := range inputs {
		if _, ok := values[name]; ok {
			continue
		}
		values[name] = widget.Options{Class: widget.String(class)}
	}
	return values
}

func bootstrap5() Preset {
	return Preset{
		Name:        Bootstrap5,
		Description: "Bootstrap 5 form controls",
		Field: map[string]any{
			"containerClass": "mb-3",
			"labelClass":     "form-label",
			"hintClass":      "form-text",
			"errorClass":     "invalid-feedback",
			"invalidClass":   "is-invalid",
			"validClass":     "is-valid",
		},
		DefaultValues: withInputClass(widget.DefaultValues{
			widget.NameButtonGroup: {
				Definitions: &widget.Options{
					ContainerClass: widget.String("btn-group"),
					Definitions:    &widget.Options{Class: widget.String("btn btn-secondary")},
				},
			},
			widget.NameSubmitButton: {Class: widget.String("btn btn-primary")},
			widget.NameResetButton:  {Class: widget.String("btn btn-outline-secondary")},
		}, "form-control"),
	}
}

func bulma() Preset {
	return Preset{
		Name:        Bulma,
		Description: "Bulma form controls",
		Field: map[string]any{
			"containerClass": "field",
			"labelClass":     "label",
			"hintClass":      "help",
			"errorClass":     "help is-danger",
			"invalidClass":   "is-danger",
			"validClass":     "is-success",
			"template":       "{{ label }}\n<div class=\"control\">{{ input }}</div>\n{{ hint }}\n{{ error }}",
		},
		DefaultValues: withInputClass(widget.DefaultValues{
			widget.NameTextArea: {Class: widget.String("textarea")},
			widget.NameButtonGroup: {
				Definitions: &widget.Options{
					ContainerClass: widget.String("buttons"),
					Definitions:    &widget.Options{Class: widget.String("button")},
				},
			},
			widget.NameSubmitButton: {Class: widget.String("button is-primary")},
			widget.NameResetButton:  {Class: widget.String("button")},
		}, "input"),
	}
}
