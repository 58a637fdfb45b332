package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripsched/config"
	"github.com/kilianp07/tripsched/core/guide"
	"github.com/kilianp07/tripsched/core/itinerary"
	"github.com/kilianp07/tripsched/core/model"
	"github.com/kilianp07/tripsched/infra/geo"
	"github.com/kilianp07/tripsched/infra/logger"
	"github.com/kilianp07/tripsched/infra/routing"
	"github.com/kilianp07/tripsched/infra/weather"
)

var (
	planStart   string
	planFinish  string
	planFrom    string
	planReturn  string
	planPlaces  []string
	planMapsURL bool
	planWeather bool
)

var planCmd = &cobra.Command{
	Use:   "plan <city>",
	Short: "Build a one-day visit itinerary inside a city",
	Long: `Build a one-day itinerary: places are visited in the order given, with
driving times estimated between them. Start and return addresses must lie
inside the chosen city; visited places may be on the outskirts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		return runPlan(cmd, cfg, args[0])
	},
}

func runPlan(cmd *cobra.Command, cfg *config.Config, city string) error {
	if len(planPlaces) == 0 {
		return fmt.Errorf("at least one --place is required")
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := logger.New("plan")
	geocoder := geo.New(cfg.Geo, log)
	router := routing.New(cfg.Routing, log)

	area, err := geocoder.CityInfo(ctx, city+", India")
	if err != nil {
		return fmt.Errorf("could not verify city %q: %w", city, err)
	}

	origin, err := resolveInCity(ctx, geocoder, planFrom, city, area)
	if err != nil {
		return fmt.Errorf("starting address: %w", err)
	}
	ret := origin
	if planReturn != "" {
		if ret, err = resolveInCity(ctx, geocoder, planReturn, city, area); err != nil {
			return fmt.Errorf("return address: %w", err)
		}
	}

	visits, err := resolveVisits(ctx, geocoder, city)
	if err != nil {
		return err
	}

	plan, err := itinerary.Build(ctx, origin, ret, visits, planStart, planFinish, router.DriveMinutes)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Start from %s at %s\n", plan.Origin.Name, planStart)
	for i, stop := range plan.Stops {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, stop.Name)
		fmt.Fprintf(out, "   travel %d min, arrive at %s\n", stop.TravelMinutes, stop.ArriveAt.Format(itinerary.ClockLayout))
		fmt.Fprintf(out, "   stay %d min, leave by %s\n", stop.StayMinutes, stop.LeaveAt.Format(itinerary.ClockLayout))
	}
	fmt.Fprintf(out, "\nReturn to %s at %s (travel %d min)\n",
		plan.Return.Name, plan.ReturnAt.Format(itinerary.ClockLayout), plan.ReturnTravel)

	fmt.Fprintf(out, "\nTrip summary:\n")
	fmt.Fprintf(out, "  total travel time: %d min\n", plan.TotalTravelMinutes)
	fmt.Fprintf(out, "  total stay time:   %d min\n", plan.TotalStayMinutes)
	fmt.Fprintf(out, "  total time spent:  %d min\n", plan.TotalMinutes())

	if !plan.FitsFinish {
		return fmt.Errorf("itinerary runs past the desired finish time %s; limit the places or shorten the stays", planFinish)
	}
	fmt.Fprintf(out, "\nYou will return before your desired finish time.\n")

	if planWeather {
		printPlanWeather(ctx, cmd, cfg, plan)
	}
	if planMapsURL {
		points := make([]model.Point, len(plan.Stops))
		for i, s := range plan.Stops {
			points[i] = s.Point
		}
		fmt.Fprintf(out, "\n%s\n", routing.MapsURL(plan.Origin.Point, points, plan.Return.Point))
	}
	return nil
}

// resolveInCity geocodes an address and requires it to be inside the city's
// bounding box.
func resolveInCity(ctx context.Context, g *geo.Geocoder, addr, city string, area geo.CityArea) (itinerary.Waypoint, error) {
	if addr == "" {
		return itinerary.Waypoint{}, fmt.Errorf("address is required")
	}
	loc, err := g.Geocode(ctx, fmt.Sprintf("%s, %s, India", addr, city))
	if err != nil {
		return itinerary.Waypoint{}, err
	}
	if !area.BBox.Contains(loc.Point) {
		return itinerary.Waypoint{}, fmt.Errorf("%q resolves outside %s", addr, city)
	}
	return itinerary.Waypoint{Name: loc.DisplayName, Point: loc.Point}, nil
}

// resolveVisits parses the --place flags ("Name:stayMinutes") and geocodes
// each place. Places outside the city's bounding box are accepted: many
// sights sit on the outskirts.
func resolveVisits(ctx context.Context, g *geo.Geocoder, city string) ([]itinerary.Visit, error) {
	visits := make([]itinerary.Visit, 0, len(planPlaces))
	for _, spec := range planPlaces {
		name, stay, err := splitPlace(spec)
		if err != nil {
			return nil, err
		}
		full := fmt.Sprintf("%s, %s, Jharkhand, India", name, city)
		loc, err := g.Geocode(ctx, full)
		if err != nil {
			return nil, fmt.Errorf("could not find %q: %w", name, err)
		}
		visits = append(visits, itinerary.Visit{
			Waypoint:    itinerary.Waypoint{Name: name, Point: loc.Point},
			StayMinutes: stay,
		})
	}
	return visits, nil
}

// splitPlace parses "Name:stayMinutes". The split is on the last colon so
// place names containing colons still work.
func splitPlace(spec string) (string, int, error) {
	i := strings.LastIndex(spec, ":")
	if i <= 0 || i == len(spec)-1 {
		return "", 0, fmt.Errorf("invalid --place %q: expected \"Name:stayMinutes\"", spec)
	}
	stay, err := strconv.Atoi(spec[i+1:])
	if err != nil || stay < 0 {
		return "", 0, fmt.Errorf("invalid stay duration in --place %q", spec)
	}
	return strings.TrimSpace(spec[:i]), stay, nil
}

func printPlanWeather(ctx context.Context, cmd *cobra.Command, cfg *config.Config, plan itinerary.Plan) {
	out := cmd.OutOrStdout()
	client := weather.New(cfg.Weather)
	fmt.Fprintf(out, "\nWeather and suggestions:\n")
	for _, stop := range plan.Stops {
		cur, err := client.Current(ctx, stop.Point)
		if err != nil {
			fmt.Fprintf(out, "\n%s: weather data not available\n", stop.Name)
		} else {
			fmt.Fprintf(out, "\n%s:\n", stop.Name)
			fmt.Fprintf(out, "  temperature: %.1f C\n", cur.Temperature)
			fmt.Fprintf(out, "  windspeed:   %.1f km/h\n", cur.WindSpeed)
			fmt.Fprintf(out, "  suggestion:  %s\n", weather.Advice(cur))
		}
		fmt.Fprintf(out, "  best time to visit: %s\n", guide.BestTime(stop.Name))
	}
}

func init() {
	planCmd.Flags().StringVar(&planStart, "start", "", "trip start time (HH:MM, 24h)")
	planCmd.Flags().StringVar(&planFinish, "finish", "", "desired finish time (HH:MM, 24h)")
	planCmd.Flags().StringVar(&planFrom, "from", "", "starting address inside the city")
	planCmd.Flags().StringVar(&planReturn, "return", "", "return address (defaults to the starting address)")
	planCmd.Flags().StringArrayVar(&planPlaces, "place", nil, `place to visit with stay duration, "Name:stayMinutes" (repeatable, visited in order)`)
	planCmd.Flags().BoolVar(&planMapsURL, "maps-url", false, "print a Google Maps directions link")
	planCmd.Flags().BoolVar(&planWeather, "weather", false, "show current weather and packing advice per place")
	_ = planCmd.MarkFlagRequired("start")
	_ = planCmd.MarkFlagRequired("finish")
	_ = planCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(planCmd)
}
