package inspection

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/carbase/carbase/internal/application/ports"
)

// HTTPChecker asks the external inspection service whether a plate's
// inspection is current. Single attempt per invocation, short timeout.
type HTTPChecker struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

// Option configures HTTPChecker.
type Option func(*HTTPChecker)

// WithClient sets the HTTP client (default: 3s timeout).
func WithClient(c *http.Client) Option {
	return func(h *HTTPChecker) {
		h.client = c
	}
}

// WithHeader sets a header sent on every request.
func WithHeader(key, value string) Option {
	return func(h *HTTPChecker) {
		if h.headers == nil {
			h.headers = make(map[string]string)
		}
		h.headers[key] = value
	}
}

// New returns an InspectionChecker that GETs baseURL with the plate as a
// query parameter.
func New(baseURL string, opts ...Option) *HTTPChecker {
	h := &HTTPChecker{
		client:  &http.Client{Timeout: 3 * time.Second},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type checkResponse struct {
	Valid bool `json:"valid"`
}

// Check implements ports.InspectionChecker.
func (h *HTTPChecker) Check(ctx context.Context, plate string) (bool, error) {
	q := url.Values{}
	q.Set("plate", plate)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range h.headers {
		req.Header.Set(k, v)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("inspection service returned status %d", resp.StatusCode)
	}
	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("inspection service payload: %w", err)
	}
	return body.Valid, nil
}

var _ ports.InspectionChecker = (*HTTPChecker)(nil)
