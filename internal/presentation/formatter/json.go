package formatter

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/zenmachine/zentop/internal/core/model"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format prints the snapshot as indented JSON.
func (f *JSONFormatter) Format(snap *model.Snapshot) error {
	data, err := sonic.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
