package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func presetsCmd() *cobra.Command {
	var sources presetSources

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := sources.registry()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Names() {
				p, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			return w.Flush()
		},
	}

	addPresetFlags(cmd, &sources)
	return cmd
}
