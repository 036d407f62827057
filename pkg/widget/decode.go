package widget

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const definitionsKey = "definitions"

// DecodeOptions builds Options from a loosely typed map such as a decoded
// YAML/JSON document. Keys may use the call style of "containerClass()" with
// a single-element argument list, so both of these decode the same way:
//
//	{"containerClass": "row"}
//	{"containerClass()": []any{"row"}}
//
// Unknown keys are rejected.
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	if len(raw) == 0 {
		return opts, nil
	}
	normalized, err := normalizeOptionMap(raw)
	if err != nil {
		return Options{}, err
	}
	if err := decode(normalized, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// DecodeDefaultValues builds DefaultValues from a map of widget name to
// option map.
func DecodeDefaultValues(raw map[string]any) (DefaultValues, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(DefaultValues, len(raw))
	for name, value := range raw {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, fmt.Errorf("widget: default values contain an empty widget name")
		}
		entry, err := StringMap(value)
		if err != nil {
			return nil, fmt.Errorf("widget: default values for %q: %w", trimmed, err)
		}
		opts, err := DecodeOptions(entry)
		if err != nil {
			return nil, fmt.Errorf("widget: default values for %q: %w", trimmed, err)
		}
		out[trimmed] = opts
	}
	return out, nil
}

// NormalizeKey strips the call-style "()" suffix from an option key.
func NormalizeKey(key string) string {
	return strings.TrimSuffix(strings.TrimSpace(key), "()")
}

// UnwrapArgument unwraps the single-element argument list used by call-style
// keys. Other values are returned unchanged.
func UnwrapArgument(key string, value any) (any, error) {
	if !strings.HasSuffix(strings.TrimSpace(key), "()") {
		return value, nil
	}
	args, ok := value.([]any)
	if !ok {
		return value, nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("widget: %s expects exactly one argument, got %d", key, len(args))
	}
	return args[0], nil
}

func normalizeOptionMap(raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		name := NormalizeKey(key)
		arg, err := UnwrapArgument(key, value)
		if err != nil {
			return nil, err
		}
		if name == definitionsKey && arg != nil {
			nested, err := StringMap(arg)
			if err != nil {
				return nil, fmt.Errorf("widget: %s: %w", definitionsKey, err)
			}
			arg, err = normalizeOptionMap(nested)
			if err != nil {
				return nil, err
			}
		}
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("widget: option %q is set twice", name)
		}
		out[name] = arg
	}
	return out, nil
}

func decode(input map[string]any, out *Options) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("widget: configure decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("widget: decode options: %w", err)
	}
	return nil
}

// StringMap converts the map shapes produced by YAML, JSON and Go literals
// into a map[string]any. A nil value yields a nil map.
func StringMap(value any) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case map[string]string:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = val
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported key type %T", key)
			}
			out[name] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a map, got %T", value)
	}
}
