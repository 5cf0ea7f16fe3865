package export

import (
	"encoding/json"
	"io"

	"sheetmapper/pkg/sheets"
)

func writeJSON(w io.Writer, mapped []sheets.MappedSheet, pretty bool) error {
	if mapped == nil {
		mapped = []sheets.MappedSheet{}
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(mapped)
}
