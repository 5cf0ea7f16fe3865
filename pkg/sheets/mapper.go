package sheets

// MapSheets converts a batch of grids into mapped sheets, in grid order.
// Options are matched to grids by sheet id; when the same id is given more
// than once the first option wins. A grid without rows, or whose header row
// index falls outside the grid, maps to an empty record list.
func MapSheets(grids []RawSheetGrid, options []SheetOption) []MappedSheet {
	headerRows := headerRowIndexes(options)

	mapped := make([]MappedSheet, 0, len(grids))
	for _, grid := range grids {
		id := SheetID(grid.Range)
		headerRow := headerRows[id]

		if headerRow < 0 || headerRow >= len(grid.Rows) {
			mapped = append(mapped, MappedSheet{ID: id, Data: []Record{}})
			continue
		}

		mapped = append(mapped, MappedSheet{
			ID:   id,
			Data: DecodeRows(grid.Rows[headerRow+1:], grid.Rows[headerRow]),
		})
	}
	return mapped
}

func headerRowIndexes(options []SheetOption) map[string]int {
	indexes := make(map[string]int, len(options))
	for _, option := range options {
		if _, ok := indexes[option.ID]; ok {
			continue
		}
		indexes[option.ID] = option.HeaderRowIndex
	}
	return indexes
}
