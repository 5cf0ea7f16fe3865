package sheets

import (
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

const apiKeyParam = "key"

// transport adds the API key, applies the client-side rate limit and turns
// non-2xx responses into a *TransportError.
type transport struct {
	next    http.RoundTripper
	apiKey  string
	limiter *rate.Limiter
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if t.apiKey != "" {
		req = req.Clone(req.Context())
		query := req.URL.Query()
		query.Set(apiKeyParam, t.apiKey)
		req.URL.RawQuery = query.Encode()
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, newTransportError(resp, req.URL)
	}
	return resp, nil
}

func newLimiter(requestsPerSecond float64, unThrottle bool) *rate.Limiter {
	if unThrottle || requestsPerSecond <= 0 {
		return nil
	}
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
