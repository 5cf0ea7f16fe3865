package export

import (
	"fmt"
	"io"
	"strings"

	"sheetmapper/pkg/sheets"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type Options struct {
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// Progress receives a progress bar while workbooks are built. Nil
	// disables it.
	Progress io.Writer
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, csv or xlsx)", s)
	}
}

// Write renders mapped sheets to w in the requested format.
func Write(w io.Writer, mapped []sheets.MappedSheet, opts Options) error {
	switch opts.Format {
	case FormatJSON, "":
		return writeJSON(w, mapped, opts.Pretty)
	case FormatCSV:
		return writeCSV(w, mapped)
	case FormatXLSX:
		return writeXLSX(w, mapped, opts.Progress)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// Columns lists the field names of a sheet in the order they first appear.
func Columns(sheet sheets.MappedSheet) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, record := range sheet.Data {
		for _, f := range record.Fields() {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			columns = append(columns, f.Name)
		}
	}
	return columns
}
