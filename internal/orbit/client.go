package orbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Searcher is the slice of the client the UI depends on. Implemented by
// *Client; test doubles implement it to script search outcomes.
type Searcher interface {
	Search(ctx context.Context, query Query) (QueryResult, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the Orbit catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultEndpoint  = "http://127.0.0.1:4848"
	defaultUserAgent = "kite/0.1"
	requestTimeout   = 10 * time.Second

	templatesPath = "/templates"
)

// NewClient builds a Client for the given endpoint base URL.
func NewClient(endpoint string) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Search issues one GET against the template search endpoint and resolves to
// either a decoded result page or a *Failure value.
//
// The query is accepted as the snapshot of the filters at trigger time but is
// not yet encoded into the request: the server receives an unconditional,
// unfiltered GET and the filters only shape local display state.
func (c *Client) Search(ctx context.Context, query Query) (QueryResult, error) {
	if c == nil {
		return QueryResult{}, &Failure{Kind: FailureNetwork, Err: fmt.Errorf("client is nil")}
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: templatesPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return QueryResult{}, &Failure{Kind: FailureNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return QueryResult{}, &Failure{Kind: FailureNetwork, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return QueryResult{}, &Failure{Kind: FailureStatus, StatusCode: resp.StatusCode}
	}

	var page QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return QueryResult{}, &Failure{Kind: FailureDecode, Err: err}
	}
	return page, nil
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = defaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
