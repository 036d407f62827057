package preset

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Preset is a named look for fields: field-wide configuration in the loose
// map form accepted by field.NewFromMap plus per-widget default values.
type Preset struct {
	Name          string
	Description   string
	Field         map[string]any
	DefaultValues widget.DefaultValues
}

// NewField returns a Field configured with the preset.
func (p Preset) NewField(opts ...field.Option) (field.Field, error) {
	f, err := field.NewFromMap(p.Field, opts...)
	if err != nil {
		return field.Field{}, fmt.Errorf("preset: %s: %w", p.Name, err)
	}
	return f.DefaultValues(p.DefaultValues), nil
}

// Validate checks that the field configuration decodes.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset: name is required")
	}
	_, err := p.NewField()
	return err
}
