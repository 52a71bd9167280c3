// Package cmd provides the command-line interface for vvvfpwm.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vvvfpwm/switchangle"
)

// EnvTableDir names the environment variable holding the default preset
// directory. It may also be set in a .env file in the working directory.
const EnvTableDir = "VVVF_TABLE_DIR"

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vvvfpwm",
		Short: "Inspect and sample quarter-wave switch-angle tables.",
		Long: `vvvfpwm reads the binary switch-angle tables used by the VVVF PWM ` +
			`simulator. It can print a table's structure, validate a set of files, ` +
			`sample one electrical cycle of output levels, and load the preset catalog.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("lenient", false, "read polarity bytes other than 0/1 as not inverted instead of rejecting them")

	root.AddCommand(newInspectCmd(), newValidateCmd(), newSampleCmd(), newPresetsCmd())
	return root
}

// Execute loads .env if present, runs the root command and exits 1 on error.
func Execute() {
	_ = godotenv.Load(".env")

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// decodeOptions maps persistent flags onto decode options.
func decodeOptions(cmd *cobra.Command) []switchangle.Option {
	var opts []switchangle.Option
	if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
		opts = append(opts, switchangle.WithLenientPolarity())
	}
	return opts
}

// decodeFile opens and decodes path. Decode closes the file.
func decodeFile(cmd *cobra.Command, path string) (*switchangle.SwitchAngleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	t, err := switchangle.Decode(f, decodeOptions(cmd)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
