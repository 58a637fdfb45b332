package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripsched/config"
	"github.com/kilianp07/tripsched/core/guide"
	"github.com/kilianp07/tripsched/infra/geo"
	"github.com/kilianp07/tripsched/infra/logger"
	"github.com/kilianp07/tripsched/infra/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <place>...",
	Short: "Current conditions and packing advice for a place",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		log := logger.New("weather")
		geocoder := geo.New(cfg.Geo, log)
		client := weather.New(cfg.Weather)
		out := cmd.OutOrStdout()

		place := strings.Join(args, " ")
		loc, err := geocoder.Geocode(cmd.Context(), place)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", loc.DisplayName)

		cur, err := client.Current(cmd.Context(), loc.Point)
		if err != nil {
			log.Warnf("weather lookup: %v", err)
			fmt.Fprintln(out, "  weather data not available")
		} else {
			fmt.Fprintf(out, "  temperature: %.1f C\n", cur.Temperature)
			fmt.Fprintf(out, "  windspeed:   %.1f km/h\n", cur.WindSpeed)
			fmt.Fprintf(out, "  suggestion:  %s\n", weather.Advice(cur))
		}
		fmt.Fprintf(out, "  best time to visit: %s\n", guide.BestTime(place))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}
