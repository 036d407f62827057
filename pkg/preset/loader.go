package preset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/widget"
)

type documentFile struct {
	Presets map[string]presetFile `json:"presets" yaml:"presets"`
}

type presetFile struct {
	Description   string         `json:"description" yaml:"description"`
	Field         map[string]any `json:"field" yaml:"field"`
	DefaultValues map[string]any `json:"defaultValues" yaml:"defaultValues"`
}

// LoadFS walks fsys and parses every JSON/YAML preset file:
//
//	presets:
//	  compact:
//	    field:
//	      containerClass: mb-1
//	    defaultValues:
//	      text:
//	        class: form-control form-control-sm
//
// Presets are returned sorted by name. A nil fsys yields no presets.
func LoadFS(fsys fs.FS) ([]Preset, error) {
	if fsys == nil {
		return nil, nil
	}

	seen := make(map[string]string)
	var presets []Preset
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("preset: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Presets {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("preset: file %s defines an empty preset name", path)
			}
			if other, exists := seen[name]; exists {
				return fmt.Errorf("preset: duplicate preset %q (files %s and %s)", name, other, path)
			}
			seen[name] = path

			p, err := normalisePreset(name, raw, path)
			if err != nil {
				return err
			}
			presets = append(presets, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// LoadInto loads the presets of fsys and registers them with r.
func LoadInto(r *Registry, fsys fs.FS) error {
	presets, err := LoadFS(fsys)
	if err != nil {
		return err
	}
	return r.RegisterAll(presets...)
}

func normalisePreset(name string, raw presetFile, source string) (Preset, error) {
	values, err := widget.DecodeDefaultValues(raw.DefaultValues)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %s in %s: %w", name, source, err)
	}
	p := Preset{
		Name:          name,
		Description:   strings.TrimSpace(raw.Description),
		Field:         raw.Field,
		DefaultValues: values,
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset: %s in %s: %w", name, source, err)
	}
	return p, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("preset: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("preset: parse %s: invalid JSON or YAML", source)
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
