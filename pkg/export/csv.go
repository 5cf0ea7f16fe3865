package export

import (
	csvwriter "encoding/csv"
	"io"
	"strconv"

	"sheetmapper/pkg/sheets"
)

var csvHeader = []string{"sheet", "row", "field", "value"}

// writeCSV writes one line per field so sheets with different headers share
// a single file. row is the zero-based record index within its sheet.
func writeCSV(w io.Writer, mapped []sheets.MappedSheet) error {
	csvWriter := csvwriter.NewWriter(w)
	if err := csvWriter.Write(csvHeader); err != nil {
		return err
	}
	for _, sheet := range mapped {
		for i, record := range sheet.Data {
			row := strconv.Itoa(i)
			for _, f := range record.Fields() {
				if err := csvWriter.Write([]string{sheet.ID, row, f.Name, f.Value}); err != nil {
					return err
				}
			}
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
