package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Strictly decode table files and report each result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs []error
			for _, path := range args {
				t, err := decodeFile(cmd, path)
				if err != nil {
					fmt.Fprintf(out, "FAIL  %v\n", err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(out, "ok    %s (%d blocks × %d switches)\n", path, t.BlockCount(), t.SwitchCount())
			}
			return errors.Join(errs...)
		},
	}
}
