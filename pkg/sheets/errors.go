package sheets

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// TransportError is returned when the Sheets API answers with a non-2xx status.
type TransportError struct {
	Status     int
	StatusText string
	URL        string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("request to '%s' failed with %d", e.URL, e.Status)
	if e.StatusText != "" {
		msg += ": " + e.StatusText
	}
	return msg
}

func newTransportError(resp *http.Response, requestURL *url.URL) *TransportError {
	return &TransportError{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		URL:        redactURL(requestURL),
	}
}

// statusText strips the numeric code from resp.Status ("404 Not Found").
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// redactURL drops the API key from a request URL.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	redacted := *u
	query := redacted.Query()
	if !query.Has(apiKeyParam) {
		return redacted.String()
	}
	query.Del(apiKeyParam)
	redacted.RawQuery = query.Encode()
	return redacted.String()
}

// asTransportError unwraps a TransportError from the *url.Error the HTTP
// client wraps it in, so callers receive it unchanged.
func asTransportError(err error) error {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr
	}
	return err
}
