package sheets

// DecodeRows pairs every cell of every row with the header field at the same
// position. Rows with no cells are skipped, cells past the end of the header
// are dropped and short rows simply produce fewer fields.
func DecodeRows(rows [][]string, header []string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		width := min(len(row), len(header))
		record := newRecord(width)
		for i := 0; i < width; i++ {
			record.set(header[i], row[i])
		}
		records = append(records, record)
	}
	return records
}
