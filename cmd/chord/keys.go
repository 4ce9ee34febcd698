package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/chord/internal/input/keymap"
)

func newKeysCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		Long: `Print the default bindings followed by those of the configured
override file, in a format the --keymap flag accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(cmd, *opts)
			if err != nil {
				return err
			}
			_, bindings, err := buildKeymap(cfg)
			if err != nil {
				return err
			}
			return keymap.Encode(cmd.OutOrStdout(), keymap.Format(format), bindings)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(keymap.FormatYAML), "output format (toml, yaml)")
	return cmd
}
