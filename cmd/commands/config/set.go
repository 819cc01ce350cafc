package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/swatch/internal/config"
	"nathanbeddoewebdev/swatch/internal/palette"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  swatch config set palette ./brand.yaml\n" +
			"  swatch config set output table",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// normalizers rewrite a value before it is validated and stored. Keys not
// present here are stored lowercased.
var normalizers = map[string]func(value string) (string, error){
	"palette": normalizePalette,
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid keys: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	value := strings.ToLower(strings.TrimSpace(args[1]))
	if normalize, ok := normalizers[spec.Name]; ok {
		var err error
		if value, err = normalize(args[1]); err != nil {
			return err
		}
	}

	if spec.Validate != nil {
		if err := spec.Validate(value); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}

// normalizePalette resolves the path to an absolute one and checks that it
// loads, so a typo is caught here rather than on the next report.
func normalizePalette(value string) (string, error) {
	path, err := filepath.Abs(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("invalid palette path %q: %w", value, err)
	}
	if _, err := palette.Load(path); err != nil {
		return "", err
	}
	return path, nil
}
