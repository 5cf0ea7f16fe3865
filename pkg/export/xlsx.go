package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"sheetmapper/pkg/sheets"

	"github.com/schollz/progressbar/v3"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheetName   = "Sheet1"
	maxSheetNameLength = 31
)

var invalidSheetNameChars = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// writeXLSX builds a workbook with one worksheet per mapped sheet. Row 1
// holds the columns, every record follows on its own row.
func writeXLSX(w io.Writer, mapped []sheets.MappedSheet, progress io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = newProgressBar(progress, len(mapped))
	}

	used := make(map[string]bool)
	for _, sheet := range mapped {
		name := worksheetName(sheet.ID, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create worksheet %q: %w", name, err)
		}
		if err := writeWorksheet(f, name, sheet); err != nil {
			return fmt.Errorf("failed to write worksheet %q: %w", name, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	// Remove default "Sheet1"
	if len(mapped) > 0 && !used[strings.ToLower(defaultSheetName)] {
		if err := f.DeleteSheet(defaultSheetName); err != nil {
			return err
		}
		f.SetActiveSheet(0)
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return f.Write(w)
}

func writeWorksheet(f *excelize.File, name string, sheet sheets.MappedSheet) error {
	columns := Columns(sheet)
	if len(columns) == 0 {
		return nil
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, record := range sheet.Data {
		row := make([]interface{}, len(columns))
		for j, c := range columns {
			if v, ok := record.Get(c); ok {
				row[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// worksheetName makes a sheet id acceptable to Excel: no reserved
// characters, at most 31 characters, unique ignoring case.
func worksheetName(id string, used map[string]bool) string {
	base := strings.Trim(invalidSheetNameChars.Replace(id), "'")
	if base == "" {
		base = "Sheet"
	}
	name := truncate(base, maxSheetNameLength)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := "~" + strconv.Itoa(n)
		name = truncate(base, maxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("[Exporting]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}
