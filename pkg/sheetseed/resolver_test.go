package sheetseed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/config"
	"github.com/dealerworks/sheetseed/pkg/sheetseed/supabase"
)

// fakeBackend is a minimal PostgREST stand-in: GET serves canned rows,
// POST captures payloads and echoes representations with generated ids.
type fakeBackend struct {
	mu                sync.Mutex
	events            []supabase.Row
	profiles          []supabase.Row
	rejectEventInsert bool
	posts             map[string][][]byte
	server            *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{posts: map[string][][]byte{}}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		var rows []supabase.Row
		switch table {
		case "events":
			rows = b.events
		case "profiles":
			rows = b.profiles
		}
		if rows == nil {
			rows = []supabase.Row{}
		}
		json.NewEncoder(w).Encode(rows)

	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		b.posts[table] = append(b.posts[table], body)

		if table == "events" {
			if b.rejectEventInsert {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"null value in column \"created_by\" violates not-null constraint"}`))
				return
			}
			var event supabase.Row
			json.Unmarshal(body, &event)
			event["id"] = "evt-created"
			b.events = append(b.events, event)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]supabase.Row{event})
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	}
}

func (b *fakeBackend) client() *supabase.Client {
	return supabase.New(b.server.URL, "test-key", zerolog.Nop())
}

func (b *fakeBackend) postCount(table string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.posts[table])
}

func (b *fakeBackend) lastPost(t *testing.T, table string) []supabase.Row {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.posts[table], "no POST captured for %s", table)
	raw := b.posts[table][len(b.posts[table])-1]

	var rows []supabase.Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		var row supabase.Row
		require.NoError(t, json.Unmarshal(raw, &row))
		rows = []supabase.Row{row}
	}
	return rows
}

func testEventSpec() config.EventSpec {
	return config.New().Event
}

func TestResolveReusesExistingEvent(t *testing.T) {
	b := newFakeBackend(t)
	b.events = []supabase.Row{{"id": "evt-1", "name": "Existing Sale"}}

	r := NewResolver(b.client(), nil, testEventSpec(), "existing-sale", zerolog.Nop())

	first, err := r.Resolve(context.Background())
	require.NoError(t, err)
	second, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "evt-1", first.EventID)
	assert.Equal(t, first.EventID, second.EventID)
	assert.False(t, first.Created)
	assert.False(t, first.UsedFallback)
	assert.Zero(t, b.postCount("events"), "resolution must not create duplicates")
}

func TestResolveCreatesWithCreatorRef(t *testing.T) {
	b := newFakeBackend(t)
	b.profiles = []supabase.Row{{"id": "user-1"}}

	r := NewResolver(b.client(), nil, testEventSpec(), "lincoln-cdjr-feb-march-26", zerolog.Nop())
	res, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "evt-created", res.EventID)
	assert.True(t, res.Created)
	assert.False(t, res.UsedFallback)

	rows := b.lastPost(t, "events")
	require.Len(t, rows, 1)
	assert.Equal(t, "user-1", rows[0]["created_by"])
	assert.Equal(t, "lincoln-cdjr-feb-march-26", rows[0]["slug"])
	assert.Equal(t, "active", rows[0]["status"])
}

func TestResolveCreateWithoutProfileOmitsCreator(t *testing.T) {
	b := newFakeBackend(t)

	r := NewResolver(b.client(), nil, testEventSpec(), "s", zerolog.Nop())
	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Created)

	rows := b.lastPost(t, "events")
	_, hasCreator := rows[0]["created_by"]
	assert.False(t, hasCreator)
}

func TestResolveRejectedWithoutFallbackIsFatal(t *testing.T) {
	b := newFakeBackend(t)
	b.rejectEventInsert = true

	r := NewResolver(b.client(), nil, testEventSpec(), "s", zerolog.Nop())
	_, err := r.Resolve(context.Background())
	require.ErrorIs(t, err, ErrNoEventID)
}

func TestResolveFallbackCreatesViaManagementChannel(t *testing.T) {
	b := newFakeBackend(t)
	b.rejectEventInsert = true

	var gotSQL string
	mgmt := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		gotSQL = payload["query"]
		w.Write([]byte(`[[{"id":"evt-7"}]]`))
	}))
	defer mgmt.Close()

	admin := supabase.NewAdmin(mgmt.URL, "tok", "ref", zerolog.Nop())
	r := NewResolver(b.client(), admin, testEventSpec(), "lincoln-cdjr-feb-march-26", zerolog.Nop())

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "evt-7", res.EventID)
	assert.True(t, res.Created)
	assert.True(t, res.UsedFallback, "fallback use must be visible to callers")

	assert.Contains(t, gotSQL, "ALTER COLUMN created_by DROP NOT NULL")
	assert.Contains(t, gotSQL, "RETURNING id")
	assert.Contains(t, gotSQL, "'lincoln-cdjr-feb-march-26'")
}

func TestResolveFallbackRequeryRecoversID(t *testing.T) {
	b := newFakeBackend(t)
	b.rejectEventInsert = true

	// The management insert lands but returns nothing parseable; the final
	// re-query must pick the row up.
	mgmt := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.events = append(b.events, supabase.Row{"id": "evt-8", "name": "Landed"})
		b.mu.Unlock()
		w.Write([]byte(`[]`))
	}))
	defer mgmt.Close()

	admin := supabase.NewAdmin(mgmt.URL, "tok", "ref", zerolog.Nop())
	r := NewResolver(b.client(), admin, testEventSpec(), "s", zerolog.Nop())

	res, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "evt-8", res.EventID)
	assert.True(t, res.UsedFallback)
}

func TestResolveSQLQuoting(t *testing.T) {
	assert.Equal(t, "'O''Fallon Sale'", sqlQuote("O'Fallon Sale"))
}

func TestFindIDShapes(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`[{"id":"a"}]`, "a"},
		{`[[{"id":"b"}]]`, "b"},
		{`[]`, ""},
		{`{"rows":[]}`, ""},
		{`not json`, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, idFromSQLResult([]byte(c.body)), "body %s", c.body)
	}
}
