// Package export renders trip listings for machine consumption.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/tripsched/core/model"
)

// WriteJSON writes the trips to w as a JSON array, preserving order.
func WriteJSON(w io.Writer, trips []model.Trip) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(trips)
}

// WriteCSV writes the trips to w in CSV form with a header row. Dates are
// ISO-8601 calendar dates.
func WriteCSV(w io.Writer, trips []model.Trip) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "destination", "start", "end", "notes"}); err != nil {
		return err
	}
	for _, t := range trips {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Destination,
			model.FormatDate(t.Start),
			model.FormatDate(t.End),
			t.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
