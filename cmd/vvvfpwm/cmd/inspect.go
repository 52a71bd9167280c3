package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a table's header and per-bucket thresholds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			t, err := decodeFile(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:      %s\n", args[0])
			fmt.Fprintf(out, "switches:  %d\n", t.SwitchCount())
			fmt.Fprintf(out, "division:  %g\n", t.ModulationIndexDivision())
			fmt.Fprintf(out, "blocks:    %d\n", t.BlockCount())
			fmt.Fprintf(out, "coverage:  [0, %g)\n", t.MaxModulationIndex())

			n := t.BlockCount()
			if limit > 0 && limit < n {
				n = limit
			}
			if n == 0 {
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "bucket\tM from\tinv\tthresholds (rad→level)")
			for b := 0; b < n; b++ {
				blk, err := t.Block(b)
				if err != nil {
					return err
				}
				steps := make([]string, len(blk.Thresholds))
				for j, th := range blk.Thresholds {
					steps[j] = fmt.Sprintf("%.4f→%d", th.Angle, th.Level)
				}
				inv := "-"
				if blk.Inverted {
					inv = "y"
				}
				fmt.Fprintf(tw, "%d\t%g\t%s\t%s\n", b, float64(b)*t.ModulationIndexDivision(), inv, strings.Join(steps, " "))
			}
			if n < t.BlockCount() {
				fmt.Fprintf(tw, "…\t\t\t%d more\n", t.BlockCount()-n)
			}
			return tw.Flush()
		},
	}
	c.Flags().Int("limit", 0, "print at most this many buckets (0 = all)")
	return c
}
