package config

import (
	"nathanbeddoewebdev/swatch/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage swatch configuration",
		Long: "View and modify persistent swatch settings.\n\n" +
			"Configuration is stored at ~/.config/swatch/config.json\n" +
			"(override with $" + config.EnvPath + ").\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(UnsetCommand())

	return cmd
}
