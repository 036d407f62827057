package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func renderCmd() *cobra.Command {
	var (
		sources   presetSources
		modelPath string
		attribute string
		control   string
		presetArg string
		defaults  string
		label     string
		hint      string
		locale    string
		messages  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one field of a form model",
		Example: `  formfield render --model form.yaml --attribute login
  formfield render --model form.yaml --attribute email --control email --preset bootstrap5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := model.LoadFormFile(modelPath)
			if err != nil {
				return err
			}
			if messages != "" {
				translations, err := loadTranslations(messages)
				if err != nil {
					return err
				}
				form = model.LocalizeForm(form, locale, translations, nil)
			}

			f := field.New()
			if presetArg != "" {
				registry, err := sources.registry()
				if err != nil {
					return err
				}
				p, err := registry.Get(presetArg)
				if err != nil {
					return err
				}
				if f, err = p.NewField(); err != nil {
					return err
				}
			}
			if defaults != "" {
				values, err := loadDefaultValues(defaults)
				if err != nil {
					return err
				}
				f = f.DefaultValues(values)
			}
			if cmd.Flags().Changed("label") {
				f = f.Label(label)
			}
			if cmd.Flags().Changed("hint") {
				f = f.Hint(hint)
			}

			f, err = f.Widget(control, form, attribute)
			if err != nil {
				return err
			}
			out, err := f.Render()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "form model file (YAML or JSON)")
	cmd.Flags().StringVar(&attribute, "attribute", "", "attribute to render")
	cmd.Flags().StringVar(&control, "control", widget.NameText, fmt.Sprintf("control to render, one of %v", field.Controls()))
	cmd.Flags().StringVar(&presetArg, "preset", "", "preset name")
	cmd.Flags().StringVar(&defaults, "defaults", "", "YAML file of default values per widget name")
	cmd.Flags().StringVar(&label, "label", "", "label text override")
	cmd.Flags().StringVar(&hint, "hint", "", "hint text override")
	cmd.Flags().StringVar(&messages, "translations", "", "YAML file of messages per locale")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale used with --translations")
	addPresetFlags(cmd, &sources)
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("attribute")

	return cmd
}

func addPresetFlags(cmd *cobra.Command, sources *presetSources) {
	cmd.Flags().StringVar(&sources.dir, "presets", "", "directory of YAML/JSON preset files")
	cmd.Flags().StringVar(&sources.themeFile, "theme", "", "go-theme manifest (JSON) to register as a preset")
	cmd.Flags().StringVar(&sources.variant, "variant", "", "theme variant")
}
