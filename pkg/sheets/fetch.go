package sheets

import "context"

// MapSheetsToRecords fetches the requested sheets of a document and maps them
// to records. With no options every sheet of the document is discovered
// first and read with its header on row 0. Errors from the fetcher,
// including *TransportError, are returned as is.
func MapSheetsToRecords(ctx context.Context, fetcher Fetcher, documentID string, options []SheetOption) ([]MappedSheet, error) {
	if len(options) == 0 {
		titles, err := fetcher.FetchSheetTitles(ctx, documentID)
		if err != nil {
			return nil, err
		}
		options = DefaultSheetOptions(titles)
		if len(options) == 0 {
			return []MappedSheet{}, nil
		}
	}

	ranges := make([]string, len(options))
	for i, option := range options {
		ranges[i] = option.ID
	}

	grids, err := fetcher.FetchRawGrids(ctx, documentID, ranges)
	if err != nil {
		return nil, err
	}
	return MapSheets(grids, options), nil
}
