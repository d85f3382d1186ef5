package formatter

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/zenmachine/zentop/internal/core/model"
	"github.com/zenmachine/zentop/internal/util"
)

type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Format prints the snapshot as a metric table plus the status footer.
func (f *TableFormatter) Format(snap *model.Snapshot) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "METRIC\tVALUE\tDELTA\tUNIT")
	for _, m := range snap.Metrics {
		fmt.Fprintf(w, "%s\t%s\t%+.2f\t%s\n", m.Label, util.FormatValue(m.Value), m.Delta, m.Unit)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(snap.MarginSeries) > 0 {
		fmt.Printf("\nMargin trend: %s\n", util.Sparkline(snap.MarginSeries))
	}
	if snap.Reasoning != "" {
		fmt.Printf("\n%s\n", snap.Reasoning)
	}
	fmt.Printf("\nGenerated at %s · %d timeline points\n", snap.GeneratedAt, len(snap.Timeline))
	return nil
}
