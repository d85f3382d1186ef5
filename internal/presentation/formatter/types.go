package formatter

import (
	"github.com/zenmachine/zentop/internal/core/model"
)

// Formatter renders a snapshot to stdout in one of the output formats.
type Formatter interface {
	Format(snap *model.Snapshot) error
}

// New returns the formatter for an output format name. Unknown names fall
// back to the table formatter.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	default:
		return NewTableFormatter()
	}
}
