package api

import (
	"context"

	"sheetmapper/pkg/sheets"
)

type mockFetcher struct {
	FetchSheetTitlesFunc func(ctx context.Context, documentID string) ([]string, error)
	FetchRawGridsFunc    func(ctx context.Context, documentID string, ranges []string) ([]sheets.RawSheetGrid, error)
	TitlesCalls          []string
	RangesCalls          [][]string
}

func (m *mockFetcher) FetchSheetTitles(ctx context.Context, documentID string) ([]string, error) {
	m.TitlesCalls = append(m.TitlesCalls, documentID)
	return m.FetchSheetTitlesFunc(ctx, documentID)
}

func (m *mockFetcher) FetchRawGrids(ctx context.Context, documentID string, ranges []string) ([]sheets.RawSheetGrid, error) {
	m.RangesCalls = append(m.RangesCalls, ranges)
	return m.FetchRawGridsFunc(ctx, documentID, ranges)
}
