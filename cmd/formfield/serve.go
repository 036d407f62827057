package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/internal/preview"
	"github.com/goliatone/go-formfield/pkg/model"
)

func serveCmd() *cobra.Command {
	var (
		sources   presetSources
		addr      string
		modelPath string
		messages  string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the field preview server",
		Long: `Start an HTTP server rendering fields of the form model:

  GET /fields/{control}/{attribute}?preset=name&locale=es
  GET /presets
  GET /metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			form, err := model.LoadFormFile(modelPath)
			if err != nil {
				return err
			}
			registry, err := sources.registry()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []preview.Option{
				preview.WithLogger(logger),
				preview.WithForm(form),
				preview.WithPresets(registry),
			}
			if messages != "" {
				translations, err := loadTranslations(messages)
				if err != nil {
					return err
				}
				opts = append(opts, preview.WithTranslator(translations))
			}
			srv := preview.New(opts...)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&modelPath, "model", "", "form model file (YAML or JSON)")
	cmd.Flags().StringVar(&messages, "translations", "", "YAML file of messages per locale, enables ?locale=")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every request")
	addPresetFlags(cmd, &sources)
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
