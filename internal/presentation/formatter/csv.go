package formatter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/zenmachine/zentop/internal/core/model"
)

// timelineHeader is the exported CSV schema; column order is part of the
// contract with downstream spreadsheets.
var timelineHeader = []string{"timestamp", "margin", "adversary_pulse"}

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes the snapshot's timeline as CSV to stdout.
func (f *CSVFormatter) Format(snap *model.Snapshot) error {
	return WriteTimelineCSV(os.Stdout, snap.Timeline)
}

// WriteTimelineCSV writes the timeline CSV document: header row, then one
// row per point. Numbers use the shortest exact representation so values
// survive a decode round-trip unchanged.
func WriteTimelineCSV(w io.Writer, points []model.TelemetryPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeader); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			p.Timestamp,
			strconv.FormatFloat(p.Margin, 'f', -1, 64),
			strconv.FormatFloat(p.AdversaryPulse, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
