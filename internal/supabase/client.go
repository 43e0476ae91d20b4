// Package supabase is a thin REST client for the managed backend: PostgREST
// tables under /rest/v1, GoTrue auth under /auth/v1 and object storage under
// /storage/v1. Rows come back as generic mappings so callers decide how much
// shape to impose.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Row is a single record as returned by PostgREST.
type Row = map[string]any

// Config configures the client. APIKey is sent both as apikey header and
// bearer token, matching the reference SDKs.
type Config struct {
	ProjectURL string
	APIKey     string
	// HTTPClient overrides the default instrumented client, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	http       *http.Client
	restURL    string
	authURL    string
	storageURL string
	apiKey     string
}

// New creates a client for the given project.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectURL == "" {
		return nil, fmt.Errorf("supabase: project URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase: api key is required")
	}
	base := strings.TrimRight(cfg.ProjectURL, "/")
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		http:       httpClient,
		restURL:    base + "/rest/v1",
		authURL:    base + "/auth/v1",
		storageURL: base + "/storage/v1",
		apiKey:     cfg.APIKey,
	}, nil
}

// Select fetches rows from a table. A nil query selects every column.
func (c *Client) Select(ctx context.Context, table string, q *Query) ([]Row, error) {
	if table == "" {
		return nil, fmt.Errorf("supabase: table is required")
	}
	endpoint := c.restURL + "/" + url.PathEscape(table)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	rows, _, err := c.doRows(req, "")
	return rows, err
}

// Count returns the exact row count of a table without fetching rows.
func (c *Client) Count(ctx context.Context, table string) (int64, error) {
	endpoint := c.restURL + "/" + url.PathEscape(table) + "?select=*&limit=0"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	_, resp, err := c.doRows(req, "count=exact")
	if err != nil {
		return 0, err
	}
	return parseContentRangeTotal(resp.Header.Get("Content-Range"))
}

// Insert adds one record (or a slice of records) and returns the stored rows.
func (c *Client) Insert(ctx context.Context, table string, body any) ([]Row, error) {
	return c.write(ctx, http.MethodPost, table, nil, body)
}

// Update patches every row matched by the query and returns the stored rows.
func (c *Client) Update(ctx context.Context, table string, q *Query, body any) ([]Row, error) {
	return c.write(ctx, http.MethodPatch, table, q, body)
}

// Delete removes every row matched by the query and returns the deleted rows.
func (c *Client) Delete(ctx context.Context, table string, q *Query) ([]Row, error) {
	return c.write(ctx, http.MethodDelete, table, q, nil)
}

func (c *Client) write(ctx context.Context, method, table string, q *Query, body any) ([]Row, error) {
	if table == "" {
		return nil, fmt.Errorf("supabase: table is required")
	}
	endpoint := c.restURL + "/" + url.PathEscape(table)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("supabase: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	rows, _, err := c.doRows(req, "return=representation")
	return rows, err
}

// SelectAs decodes matching rows straight into out, preserving the wire
// payload for record types that do their own shaping on unmarshal.
func (c *Client) SelectAs(ctx context.Context, table string, q *Query, out any) error {
	if table == "" {
		return fmt.Errorf("supabase: table is required")
	}
	endpoint := c.restURL + "/" + url.PathEscape(table)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	data, _, err := c.doRaw(req, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("supabase: decode rows: %w", err)
	}
	return nil
}

// InsertAs inserts a record and decodes the stored rows into out.
func (c *Client) InsertAs(ctx context.Context, table string, body, out any) error {
	if table == "" {
		return fmt.Errorf("supabase: table is required")
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("supabase: encode body: %w", err)
	}
	endpoint := c.restURL + "/" + url.PathEscape(table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	data, _, err := c.doRaw(req, "return=representation")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("supabase: decode rows: %w", err)
	}
	return nil
}

// doRaw runs the request with auth headers and returns the response body
// after status checking.
func (c *Client) doRaw(req *http.Request, prefer string) ([]byte, *http.Response, error) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("supabase: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("supabase: read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, nil, newAPIError(resp.StatusCode, data)
	}
	return data, resp, nil
}

// doRows decodes a row-array response. Single-object responses are wrapped
// into a one-element slice.
func (c *Client) doRows(req *http.Request, prefer string) ([]Row, *http.Response, error) {
	data, resp, err := c.doRaw(req, prefer)
	if err != nil {
		return nil, nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, resp, nil
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, resp, nil
	}
	var single Row
	if err := json.Unmarshal(data, &single); err == nil {
		return []Row{single}, resp, nil
	}
	return nil, resp, fmt.Errorf("supabase: unexpected response shape: %s", truncate(data, 200))
}

// Ping verifies the REST endpoint is reachable and the key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.restURL+"/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: ping: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, data)
	}
	return nil
}

// parseContentRangeTotal extracts the total from a "0-24/3573" style header.
func parseContentRangeTotal(value string) (int64, error) {
	idx := strings.LastIndex(value, "/")
	if idx < 0 {
		return 0, fmt.Errorf("supabase: missing content-range header")
	}
	total := value[idx+1:]
	if total == "*" {
		return 0, nil
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("supabase: bad content-range %q", value)
	}
	return n, nil
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
