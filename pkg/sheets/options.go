package sheets

import (
	"strconv"
	"strings"
)

// ParseSheetOption reads "Name" or "Name:<headerRowIndex>". A suffix that is
// not a non-negative integer is treated as part of the sheet name.
func ParseSheetOption(s string) SheetOption {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return SheetOption{ID: s}
	}
	headerRow, err := strconv.Atoi(s[i+1:])
	if err != nil || headerRow < 0 {
		return SheetOption{ID: s}
	}
	return SheetOption{ID: s[:i], HeaderRowIndex: headerRow}
}

func ParseSheetOptions(values []string) []SheetOption {
	options := make([]SheetOption, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		options = append(options, ParseSheetOption(v))
	}
	return options
}

// DefaultSheetOptions builds header-row-0 options for the given titles.
func DefaultSheetOptions(titles []string) []SheetOption {
	options := make([]SheetOption, len(titles))
	for i, title := range titles {
		options[i] = SheetOption{ID: title}
	}
	return options
}
