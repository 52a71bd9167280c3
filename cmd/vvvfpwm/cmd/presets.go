package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vvvfpwm/preset"
)

func newPresetsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "presets",
		Short: "Load the preset catalog from a directory of <Name>.bin files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if dir == "" {
				dir = os.Getenv(EnvTableDir)
			}
			if dir == "" {
				return fmt.Errorf("no table directory: pass --dir or set %s", EnvTableDir)
			}

			logger := log.New(io.Discard, "", 0)
			if verbose {
				logger = log.New(cmd.ErrOrStderr(), "vvvfpwm: ", log.LstdFlags)
			}
			reg, err := preset.NewRegistry(
				preset.NewFSProvider(os.DirFS(dir), "."),
				preset.WithDecodeOptions(decodeOptions(cmd)...),
				preset.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, name := range preset.Names() {
				t, err := reg.Get(name)
				switch {
				case errors.Is(err, os.ErrNotExist):
					fmt.Fprintf(out, "%-13s missing\n", name)
					errs = append(errs, err)
				case err != nil:
					fmt.Fprintf(out, "%-13s FAIL %v\n", name, err)
					errs = append(errs, err)
				default:
					fmt.Fprintf(out, "%-13s ok   %d blocks × %d switches, M < %g\n",
						name, t.BlockCount(), t.SwitchCount(), t.MaxModulationIndex())
				}
			}
			return errors.Join(errs...)
		},
	}
	c.Flags().String("dir", "", "table directory (default $"+EnvTableDir+")")
	c.Flags().BoolP("verbose", "v", false, "log each decode to stderr")
	return c
}
