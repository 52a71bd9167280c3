package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sample <file>",
		Short: "Print one electrical cycle of PWM levels at a modulation index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _ := cmd.Flags().GetFloat64("m")
			points, _ := cmd.Flags().GetInt("points")
			compact, _ := cmd.Flags().GetBool("compact")
			if points <= 0 {
				return fmt.Errorf("--points must be > 0, got %d", points)
			}

			t, err := decodeFile(cmd, args[0])
			if err != nil {
				return err
			}
			if _, ok := t.Bucket(m); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: M=%g outside table coverage [0, %g), all levels are 0\n", m, t.MaxModulationIndex())
			}

			levels := make([]int, points)
			t.Sample(m, levels)

			out := cmd.OutOrStdout()
			if compact {
				var sb strings.Builder
				for _, l := range levels {
					sb.WriteByte(byte('0' + l))
				}
				fmt.Fprintln(out, sb.String())
				return nil
			}
			for i, l := range levels {
				deg := 360 * float64(i) / float64(points)
				fmt.Fprintf(out, "%8.3f  %8.5f  %d\n", deg, deg*math.Pi/180, l)
			}
			return nil
		},
	}
	c.Flags().Float64("m", 0, "modulation index")
	c.Flags().Int("points", 360, "samples per electrical cycle")
	c.Flags().Bool("compact", false, "print levels as a single digit string")
	return c
}
