package main

import (
	"encoding/json"
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/preset"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// presetSources are the flags shared by commands that resolve presets.
type presetSources struct {
	dir       string
	themeFile string
	variant   string
}

// registry returns the built-in presets plus those loaded from the preset
// directory and the theme manifest, when given.
func (s presetSources) registry() (*preset.Registry, error) {
	r := preset.NewDefaultRegistry()
	if s.dir != "" {
		if err := preset.LoadInto(r, os.DirFS(s.dir)); err != nil {
			return nil, err
		}
	}
	if s.themeFile != "" {
		manifest, err := loadManifest(s.themeFile)
		if err != nil {
			return nil, err
		}
		p, err := preset.FromThemeManifest(manifest, s.variant)
		if err != nil {
			return nil, err
		}
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func loadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme manifest: %w", err)
	}
	var manifest theme.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse theme manifest %s: %w", path, err)
	}
	return &manifest, nil
}

func loadTranslations(path string) (model.MapTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	var translations model.MapTranslator
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("parse translations %s: %w", path, err)
	}
	return translations, nil
}

func loadDefaultValues(path string) (widget.DefaultValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read default values: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse default values %s: %w", path, err)
	}
	return widget.DecodeDefaultValues(raw)
}
