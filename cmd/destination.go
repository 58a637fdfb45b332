package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripsched/app"
)

var addDestRegion string

var addDestinationCmd = &cobra.Command{
	Use:   "add-destination <name>",
	Short: "Register a destination that trips can be planned to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *app.Service) error {
			d, err := svc.AddDestination(args[0], addDestRegion)
			if err != nil {
				return err
			}
			if d.Region != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "added destination %s (%s)\n", d.Name, d.Region)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "added destination %s\n", d.Name)
			}
			return nil
		})
	},
}

var removeDestinationCmd = &cobra.Command{
	Use:   "remove-destination <name>",
	Short: "Remove a destination that has no planned trips",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *app.Service) error {
			if err := svc.RemoveDestination(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed destination %s\n", args[0])
			return nil
		})
	},
}

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List registered destinations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *app.Service) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tREGION")
			for _, d := range svc.Destinations() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Region)
			}
			return tw.Flush()
		})
	},
}

func init() {
	addDestinationCmd.Flags().StringVar(&addDestRegion, "region", "", "locality the destination belongs to")
	rootCmd.AddCommand(addDestinationCmd, removeDestinationCmd, destinationsCmd)
}
