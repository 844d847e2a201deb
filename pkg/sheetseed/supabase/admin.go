package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// DefaultManagementURL is the hosted management API endpoint.
const DefaultManagementURL = "https://api.supabase.com"

// Admin is the privileged management-API channel. It can run arbitrary SQL
// against the project database, including statements the data API would
// refuse. It exists solely for the resolver's constraint-relaxation
// fallback and must be wired in explicitly.
type Admin struct {
	baseURL    string
	token      string
	projectRef string
	http       *http.Client
	log        zerolog.Logger
}

// NewAdmin returns a management client for the given project. baseURL is
// normally DefaultManagementURL; tests point it at a local server.
func NewAdmin(baseURL, token, projectRef string, log zerolog.Logger) *Admin {
	if baseURL == "" {
		baseURL = DefaultManagementURL
	}
	return &Admin{
		baseURL:    baseURL,
		token:      token,
		projectRef: projectRef,
		http:       &http.Client{Timeout: defaultTimeout},
		log:        log.With().Str("component", "supabase-admin").Logger(),
	}
}

// Exec runs a SQL statement through the management API and returns the raw
// response body. Every call is logged: a management-channel statement is a
// schema-level side effect worth an audit trail.
func (a *Admin) Exec(ctx context.Context, sql string) ([]byte, error) {
	a.log.Warn().Str("sql", sql).Msg("executing SQL via management API")

	payload, err := json.Marshal(map[string]string{"query": sql})
	if err != nil {
		return nil, fmt.Errorf("supabase: marshal management query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/database/query", a.baseURL, a.projectRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("supabase: build management request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: management query: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: read management response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Body: truncate(data)}
		a.log.Error().Int("status", apiErr.Status).Str("body", apiErr.Body).Msg("management query rejected")
		return nil, apiErr
	}
	return data, nil
}
