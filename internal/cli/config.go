package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wordleaid configuration",
		Long: `Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (WORDLEAID_*, PORT, LOG_LEVEL, CLIENT_ORIGIN, JWT_SECRET)
3. Config file (./wordleaid.yaml or ~/.wordleaid/config.yaml)
4. Defaults`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f := a.v.ConfigFileUsed(); f != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", f)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
			}

			// token_secret is tagged yaml:"-" and never printed.
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	return cmd
}
