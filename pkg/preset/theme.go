package preset

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/widget"
)

// TokenPrefix marks the theme tokens read by FromThemeManifest.
const TokenPrefix = "formfield."

// fieldToken holds field-wide options, e.g. "formfield.field.containerClass".
const fieldToken = "field"

// FromThemeManifest builds a preset from the "formfield." tokens of a theme
// manifest. Tokens address options by dotted path:
//
//	formfield.field.labelClass                      -> field-wide option
//	formfield.text.class                            -> DefaultValues["text"].class
//	formfield.buttonGroup.definitions.containerClass
//	formfield.text.attributes.autocomplete
//
// Tokens of variant, when non-empty, override the base tokens. The preset is
// named after the manifest, suffixed with "/variant" when one is selected.
func FromThemeManifest(manifest *theme.Manifest, variant string) (Preset, error) {
	if manifest == nil {
		return Preset{}, fmt.Errorf("preset: theme manifest is required")
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	name := manifest.Name
	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return Preset{}, fmt.Errorf("preset: theme %q has no variant %q", manifest.Name, variant)
		}
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		name += "/" + variant
	}

	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		if strings.HasPrefix(key, TokenPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	fieldOpts := map[string]any{}
	values := map[string]any{}
	for _, key := range keys {
		path := strings.Split(strings.TrimPrefix(key, TokenPrefix), ".")
		if len(path) < 2 {
			return Preset{}, fmt.Errorf("preset: theme token %q needs a widget and an option", key)
		}
		target := values
		if path[0] == fieldToken {
			target, path = fieldOpts, path[1:]
		}
		if err := setPath(target, path, tokens[key]); err != nil {
			return Preset{}, fmt.Errorf("preset: theme token %q: %w", key, err)
		}
	}

	defaults, err := widget.DecodeDefaultValues(values)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: theme %q: %w", manifest.Name, err)
	}
	p := Preset{
		Name:          name,
		Description:   fmt.Sprintf("theme %s %s", manifest.Name, manifest.Version),
		Field:         fieldOpts,
		DefaultValues: defaults,
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func setPath(target map[string]any, path []string, value string) error {
	for idx, segment := range path {
		if segment == "" {
			return fmt.Errorf("empty path segment")
		}
		if idx == len(path)-1 {
			if _, exists := target[segment]; exists {
				return fmt.Errorf("%q is already a group", segment)
			}
			target[segment] = value
			return nil
		}
		next, exists := target[segment]
		if !exists {
			child := map[string]any{}
			target[segment] = child
			target = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%q is already set to a value", segment)
		}
		target = child
	}
	return nil
}
