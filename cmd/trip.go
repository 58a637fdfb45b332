package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/tripsched/app"
	"github.com/kilianp07/tripsched/core/model"
	"github.com/kilianp07/tripsched/pkg/export"
)

var (
	addTripNotes string

	listFrom    string
	listTo      string
	listFormat  string
	listSummary bool
)

var addTripCmd = &cobra.Command{
	Use:   "add-trip <destination> <start> <end>",
	Short: "Plan a trip to a registered destination (dates as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := model.ParseDate(args[1])
		if err != nil {
			return err
		}
		end, err := model.ParseDate(args[2])
		if err != nil {
			return err
		}
		return withService(func(svc *app.Service) error {
			t, err := svc.AddTrip(args[0], start, end, addTripNotes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added trip %d: %s %s..%s\n",
				t.ID, t.Destination, model.FormatDate(t.Start), model.FormatDate(t.End))
			return nil
		})
	},
}

var removeTripCmd = &cobra.Command{
	Use:   "remove-trip <id>",
	Short: "Remove a planned trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid trip id %q", args[0])
		}
		return withService(func(svc *app.Service) error {
			if err := svc.RemoveTrip(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed trip %d\n", id)
			return nil
		})
	},
}

var listTripsCmd = &cobra.Command{
	Use:   "list-trips",
	Short: "List planned trips in start-date order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (listFrom == "") != (listTo == "") {
			return fmt.Errorf("--from and --to must be given together")
		}
		return withService(func(svc *app.Service) error {
			var trips []model.Trip
			if listFrom != "" {
				from, err := model.ParseDate(listFrom)
				if err != nil {
					return err
				}
				to, err := model.ParseDate(listTo)
				if err != nil {
					return err
				}
				trips = svc.TripsInRange(from, to)
			} else {
				trips = svc.ListTrips()
			}

			out := cmd.OutOrStdout()
			switch listFormat {
			case "json":
				if err := export.WriteJSON(out, trips); err != nil {
					return err
				}
			case "csv":
				if err := export.WriteCSV(out, trips); err != nil {
					return err
				}
			case "table":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDESTINATION\tSTART\tEND\tNOTES")
				for _, t := range trips {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
						t.ID, t.Destination, model.FormatDate(t.Start), model.FormatDate(t.End), t.Notes)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: expected table, json or csv", listFormat)
			}

			if listSummary {
				printSummary(cmd, trips)
			}
			return nil
		})
	},
}

// printSummary reports aggregate figures over the listed trips.
func printSummary(cmd *cobra.Command, trips []model.Trip) {
	out := cmd.OutOrStdout()
	if len(trips) == 0 {
		fmt.Fprintln(out, "no trips planned")
		return
	}
	days := make([]float64, len(trips))
	total := 0
	for i, t := range trips {
		days[i] = float64(t.Days())
		total += t.Days()
	}
	mean, std := stat.MeanStdDev(days, nil)
	fmt.Fprintf(out, "\n%d trips, %d days planned, %.1f days per trip", len(trips), total, mean)
	if len(trips) > 1 {
		fmt.Fprintf(out, " (stddev %.1f)", std)
	}
	fmt.Fprintln(out)
}

func init() {
	addTripCmd.Flags().StringVar(&addTripNotes, "notes", "", "free-form notes for the trip")
	listTripsCmd.Flags().StringVar(&listFrom, "from", "", "only trips intersecting this range (YYYY-MM-DD)")
	listTripsCmd.Flags().StringVar(&listTo, "to", "", "end of the range (YYYY-MM-DD, inclusive)")
	listTripsCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table, json or csv")
	listTripsCmd.Flags().BoolVar(&listSummary, "summary", false, "append aggregate figures")
	rootCmd.AddCommand(addTripCmd, removeTripCmd, listTripsCmd)
}
