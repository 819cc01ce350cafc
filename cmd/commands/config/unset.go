package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/swatch/internal/config"

	"github.com/spf13/cobra"
)

// UnsetCommand returns the "config unset" command.
func UnsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "unset <key>",
		Short:        "Clear a configuration value",
		Long:         "Clear a persistent configuration value, reverting to the built-in default.\n\n" + config.KeysHelp(),
		Args:         cobra.ExactArgs(1),
		RunE:         runUnset,
		SilenceUsage: true,
	}

	return cmd
}

func runUnset(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	spec.Set(cfg, "")
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", spec.Name)
	return nil
}
