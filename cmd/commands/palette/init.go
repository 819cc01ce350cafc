package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"nathanbeddoewebdev/swatch/internal/atomicfile"
	pal "nathanbeddoewebdev/swatch/internal/palette"

	"github.com/spf13/cobra"
)

// InitCommand returns the "palette init" command.
func InitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the built-in palette to a file",
		Long: `Write the built-in palette to a .yaml, .yml or .json file so it can be
edited and passed back with --palette or saved with
'swatch config set palette <path>'.

Existing files are not overwritten unless --force is given.

Examples:
  swatch palette init brand.yaml
  swatch palette init brand.json --force`,
		Args:         cobra.ExactArgs(1),
		RunE:         runInit,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := pal.FormatFromPath(path)
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	data, err := pal.Encode(pal.Default(), format)
	if err != nil {
		return err
	}

	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote palette to %s\n", path)
	return nil
}
