package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	Titles          []string
	TitlesErr       error
	Grids           []RawSheetGrid
	GridsErr        error
	TitlesCalled    bool
	GridsCalled     bool
	RequestedRanges []string
}

func (f *fakeFetcher) FetchSheetTitles(ctx context.Context, documentID string) ([]string, error) {
	f.TitlesCalled = true
	return f.Titles, f.TitlesErr
}

func (f *fakeFetcher) FetchRawGrids(ctx context.Context, documentID string, ranges []string) ([]RawSheetGrid, error) {
	f.GridsCalled = true
	f.RequestedRanges = ranges
	if f.GridsErr != nil {
		return nil, f.GridsErr
	}
	return f.Grids, nil
}

func TestMapSheetsToRecordsDiscovery(t *testing.T) {
	fetcher := &fakeFetcher{
		Titles: []string{"Sheet1", "Sheet2"},
		Grids: []RawSheetGrid{
			{Range: "Sheet1!A1:B2", Rows: [][]string{{"a", "b"}, {"1", "2"}}},
			{Range: "Sheet2!A1:A1", Rows: [][]string{{"only header"}}},
		},
	}

	mapped, err := MapSheetsToRecords(context.Background(), fetcher, "doc", nil)

	require.NoError(t, err)
	assert.True(t, fetcher.TitlesCalled)
	assert.Equal(t, []string{"Sheet1", "Sheet2"}, fetcher.RequestedRanges)
	assert.Equal(t, []string{"Sheet1", "Sheet2"}, sheetIDs(mapped))
	assert.Len(t, mapped[0].Data, 1)
	assert.Empty(t, mapped[1].Data)
}

func TestMapSheetsToRecordsNamed(t *testing.T) {
	fetcher := &fakeFetcher{
		Grids: []RawSheetGrid{
			{Range: "'Q1 Data'!A1:B4", Rows: [][]string{{"title"}, {"k", "v"}, {"x", "1"}, {"y", "2"}}},
		},
	}

	mapped, err := MapSheetsToRecords(context.Background(), fetcher, "doc", []SheetOption{{ID: "Q1 Data", HeaderRowIndex: 1}})

	require.NoError(t, err)
	assert.False(t, fetcher.TitlesCalled)
	assert.Equal(t, []string{"Q1 Data"}, fetcher.RequestedRanges)
	require.Len(t, mapped, 1)
	assert.Equal(t, "Q1 Data", mapped[0].ID)
	require.Len(t, mapped[0].Data, 2)
	assert.Equal(t, map[string]string{"k": "y", "v": "2"}, mapped[0].Data[1].Map())
}

func TestMapSheetsToRecordsNoTitles(t *testing.T) {
	fetcher := &fakeFetcher{Titles: []string{}}

	mapped, err := MapSheetsToRecords(context.Background(), fetcher, "doc", nil)

	require.NoError(t, err)
	assert.NotNil(t, mapped)
	assert.Empty(t, mapped)
	assert.False(t, fetcher.GridsCalled)
}

func TestMapSheetsToRecordsTransportErrors(t *testing.T) {
	notFound := &TransportError{Status: 404, StatusText: "Not Found", URL: "https://sheets.example/v4/spreadsheets/doc"}

	tests := []struct {
		name        string
		fetcher     *fakeFetcher
		options     []SheetOption
		wantGridsIn bool
	}{
		{
			name:    "titles request fails",
			fetcher: &fakeFetcher{TitlesErr: notFound},
		},
		{
			name:        "batch request fails",
			fetcher:     &fakeFetcher{GridsErr: notFound},
			options:     []SheetOption{{ID: "Sheet1"}},
			wantGridsIn: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, err := MapSheetsToRecords(context.Background(), tt.fetcher, "doc", tt.options)

			assert.Nil(t, mapped)
			assert.Same(t, notFound, err)
			assert.Equal(t, tt.wantGridsIn, tt.fetcher.GridsCalled)

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, 404, transportErr.Status)
			assert.Equal(t, "https://sheets.example/v4/spreadsheets/doc", transportErr.URL)
		})
	}
}

func TestTransportErrorMessage(t *testing.T) {
	err := &TransportError{Status: 404, StatusText: "Not Found", URL: "https://x/y"}
	assert.Equal(t, "request to 'https://x/y' failed with 404: Not Found", err.Error())

	err = &TransportError{Status: 599, URL: "https://x/y"}
	assert.Equal(t, "request to 'https://x/y' failed with 599", err.Error())
}
