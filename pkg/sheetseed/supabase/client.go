// Package supabase talks to a Supabase project: the PostgREST data API for
// normal reads and writes, and the management API for the privileged SQL
// channel.
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
	"time"

	"github.com/rs/zerolog"
)

// maxErrorBody bounds how much of an error response is kept and logged.
const maxErrorBody = 200

const defaultTimeout = 30 * time.Second

// Row is one record as returned by the data API.
type Row = map[string]interface{}

// APIError is a non-2xx response from the data API. It is distinct from
// transport errors so that callers can tell a backend rejection from a
// network failure.
type APIError struct {
	Status int
	// Body holds at most maxErrorBody bytes of the response.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Body)
}

// Client issues REST calls against a project's data API. All failures
// surface as returned errors; the client never panics on a bad response.
// It performs no retries.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     zerolog.Logger
}

// New returns a Client for the project at baseURL (e.g.
// "https://abc.supabase.co") authenticating with the given service key.
func New(baseURL, key string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log.With().Str("component", "supabase").Logger(),
	}
}

// Query narrows a Select call.
type Query struct {
	// Select is a comma-separated column list; empty means all columns.
	Select string
	// Limit caps the row count when positive.
	Limit int
	// Filters holds raw PostgREST filter expressions keyed by column,
	// e.g. {"event_id": "eq.42"}.
	Filters map[string]string
}

// Select reads rows from a table.
func (c *Client) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	params := url.Values{}
	if q.Select != "" {
		params.Set("select", q.Select)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	for col, expr := range q.Filters {
		params.Set(col, expr)
	}
	return c.do(ctx, http.MethodGet, table, params, nil, "")
}

// InsertOptions modifies Insert behavior.
type InsertOptions struct {
	// OnConflict names the natural-key column list; when set, the insert
	// becomes an upsert (merge-duplicates) so re-running the pipeline does
	// not duplicate rows on backends carrying the matching unique
	// constraint.
	OnConflict string
}

// Insert creates rows in a table and returns the created representations.
// records marshals to a JSON object or array of objects.
func (c *Client) Insert(ctx context.Context, table string, records interface{}, opts InsertOptions) ([]Row, error) {
	params := url.Values{}
	if opts.OnConflict != "" {
		params.Set("on_conflict", opts.OnConflict)
	}
	return c.do(ctx, http.MethodPost, table, params, records, opts.OnConflict)
}

func (c *Client) do(ctx context.Context, method, table string, params url.Values, payload interface{}, onConflict string) ([]Row, error) {
	endpoint := c.baseURL + "/rest/v1/" + table
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("supabase: marshal %s payload: %w", table, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("supabase: build %s request: %w", table, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("apikey", c.key)
	req.Header.Set("Content-Type", "application/json")
	prefer := "return=representation"
	if onConflict != "" {
		prefer += ",resolution=merge-duplicates"
	}
	req.Header.Set("Prefer", prefer)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: read %s response: %w", table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Body: truncate(data)}
		c.log.Error().
			Str("table", table).
			Int("status", apiErr.Status).
			Str("body", apiErr.Body).
			Msg("request rejected")
		return nil, apiErr
	}

	if len(data) == 0 {
		return nil, nil
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		// A single-object representation unmarshals as one row.
		var row Row
		if err2 := json.Unmarshal(data, &row); err2 != nil {
			return nil, fmt.Errorf("supabase: decode %s response: %w", table, err)
		}
		rows = []Row{row}
	}
	return rows, nil
}

func truncate(data []byte) string {
	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}
	return string(data)
}
