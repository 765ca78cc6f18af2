package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/reshuffle/admin/internal/config"
)

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 1 << 20

// Client is the HTTP Fetcher for the admin validation endpoints.
type Client struct {
	httpClient *http.Client
	partURL    string
	taskURL    string
	csrfToken  string
	sessionID  string
}

var _ Fetcher = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client from endpoint settings.
func NewClient(cfg config.EndpointConfig, opts ...ClientOption) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		partURL:    base + "/" + strings.TrimLeft(cfg.PartPath, "/"),
		taskURL:    base + "/" + strings.TrimLeft(cfg.TaskPath, "/"),
		csrfToken:  cfg.CSRFToken,
		sessionID:  cfg.SessionID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchPart(ctx context.Context, q PartQuery) (*PartPayload, error) {
	params := url.Values{}
	params.Set("id_sbj", q.SubjectID)
	if q.PartID != "" {
		params.Set("id_prt", q.PartID)
	}

	raw, err := c.get(ctx, c.partURL, params)
	if err != nil {
		return nil, err
	}
	return DecodePart(raw)
}

func (c *Client) FetchTask(ctx context.Context, q TaskQuery) (*TaskPayload, error) {
	params := url.Values{}
	params.Set("id_prt", q.PartID)

	raw, err := c.get(ctx, c.taskURL, params)
	if err != nil {
		return nil, err
	}
	return DecodeTask(raw)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	params.Set("csrfmiddlewaretoken", c.csrfToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if c.csrfToken != "" {
		req.Header.Set("X-CSRFToken", c.csrfToken)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: c.csrfToken})
	}
	if c.sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: c.sessionID})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrUnavailable{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrUnavailable{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status for %s", endpoint),
		}
	}

	return json.RawMessage(body), nil
}
