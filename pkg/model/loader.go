package model

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseForm decodes a JSON or YAML form declaration. source is only used in
// error messages.
func ParseForm(data []byte, source string) (*Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("model: file %s is empty", source)
	}

	var form Form
	if err := json.Unmarshal(data, &form); err != nil {
		form = Form{}
		if err := yaml.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("model: parse %s: invalid JSON or YAML", source)
		}
	}

	seen := make(map[string]struct{}, len(form.Attributes))
	for _, attr := range form.Attributes {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			return nil, fmt.Errorf("model: file %s declares an attribute without a name", source)
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("model: duplicate attribute %q (file %s)", name, source)
		}
		seen[name] = struct{}{}
	}
	return &form, nil
}

// LoadFormFS reads and parses path from fsys.
func LoadFormFS(fsys fs.FS, path string) (*Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}

// LoadFormFile reads and parses a form declaration from disk.
func LoadFormFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}
