package sheets

import "strings"

// SheetID extracts the sheet name from an A1 range label such as
// "'My Sheet'!A1:B10". Labels without a '!' are returned whole.
func SheetID(rangeLabel string) string {
	name, _, _ := strings.Cut(rangeLabel, "!")
	if strings.HasPrefix(name, "'") {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "'"), "'")
		return strings.ReplaceAll(name, "''", "'")
	}
	return name
}
