package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

const titleFields = "sheets/properties/title"

type ClientConfig struct {
	// Endpoint overrides the Sheets API base URL.
	Endpoint string
	// APIKey is sent as the "key" query parameter. Takes precedence over
	// CredentialsFile.
	APIKey string
	// CredentialsFile is a service account JSON key.
	CredentialsFile   string
	HTTPProxyURL      string
	UnThrottle        bool
	RequestsPerSecond float64
	Timeout           time.Duration
}

// SheetClient reads spreadsheets through the Sheets v4 API. It implements
// Fetcher.
type SheetClient struct {
	service *sheetsv4.Service
	Logger  *logrus.Logger
}

// NewSheetClient builds a client for cfg. ctx is kept by the service account
// token source for token refreshes.
func NewSheetClient(ctx context.Context, cfg ClientConfig, logger *logrus.Logger) (*SheetClient, error) {
	if logger == nil {
		logger = logrus.New()
	}

	httpClient, err := newHTTPClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	srv, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}
	return &SheetClient{
		service: srv,
		Logger:  logger,
	}, nil
}

func newHTTPClient(ctx context.Context, cfg ClientConfig, logger *logrus.Logger) (*http.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.HTTPProxyURL != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.HTTPProxyURL, err)
		}
		base.Proxy = http.ProxyURL(proxyURL)
	}

	var next http.RoundTripper = base
	switch {
	case cfg.APIKey != "":
		logger.Debug("Using API key authentication")
	case cfg.CredentialsFile != "":
		logger.Debugf("Using service account credentials from %s", cfg.CredentialsFile)
		credentials, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read credentials: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(credentials, sheetsv4.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse credentials: %w", err)
		}
		tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base, Timeout: cfg.Timeout})
		next = jwtConfig.Client(tokenCtx).Transport
	default:
		logger.Warn("No API key or credentials configured, requests are unauthenticated")
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &transport{
			next:    next,
			apiKey:  cfg.APIKey,
			limiter: newLimiter(cfg.RequestsPerSecond, cfg.UnThrottle),
		},
	}, nil
}

func (s *SheetClient) FetchSheetTitles(ctx context.Context, documentID string) ([]string, error) {
	s.Logger.Debugf("Fetching sheet titles for %s", documentID)

	ss, err := s.service.Spreadsheets.Get(documentID).Fields(titleFields).Context(ctx).Do()
	if err != nil {
		return nil, asTransportError(err)
	}

	titles := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh == nil || sh.Properties == nil {
			continue
		}
		titles = append(titles, sh.Properties.Title)
	}
	s.Logger.Tracef("Sheet titles: %v", titles)
	return titles, nil
}

func (s *SheetClient) FetchRawGrids(ctx context.Context, documentID string, ranges []string) ([]RawSheetGrid, error) {
	s.Logger.Debugf("Fetching %d ranges for %s", len(ranges), documentID)

	resp, err := s.service.Spreadsheets.Values.BatchGet(documentID).Ranges(ranges...).Context(ctx).Do()
	if err != nil {
		return nil, asTransportError(err)
	}

	grids := make([]RawSheetGrid, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		if vr == nil {
			continue
		}
		s.Logger.Tracef("Range %s has %d rows", vr.Range, len(vr.Values))
		grids = append(grids, RawSheetGrid{
			Range: vr.Range,
			Rows:  toStringRows(vr.Values),
		})
	}
	return grids, nil
}

// toStringRows converts API cell values to strings. Formatted values are
// already strings; anything else goes through cast.
func toStringRows(values [][]interface{}) [][]string {
	if len(values) == 0 {
		return nil
	}
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cast.ToString(cell)
		}
		rows[i] = cells
	}
	return rows
}
