package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripsched/core/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [city]",
	Short: "Show curated places and the best season to visit them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, c := range guide.Cities() {
				fmt.Fprintf(out, "%s (%d places)\n", c.Name, len(c.Places))
			}
			return nil
		}
		c, ok := guide.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no guide entry for %q", args[0])
		}
		fmt.Fprintf(out, "Places in %s:\n", c.Name)
		for _, p := range c.Places {
			fmt.Fprintf(out, "  %s\n    best time: %s\n", p, guide.BestTime(p))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
