package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.header = r.Header.Clone()
		captured.body, _ = io.ReadAll(r.Body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		ProjectURL: server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	return client, captured
}

func TestSelectSendsAuthHeadersAndQuery(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","name":"Harbor View"}]`))
	})

	rows, err := client.Select(context.Background(), "places",
		Columns("id, name").Eq("country", "India").Order("name", false).Limit(5))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Harbor View", rows[0]["name"])

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/rest/v1/places", captured.path)
	assert.Equal(t, "test-key", captured.header.Get("apikey"))
	assert.Equal(t, "Bearer test-key", captured.header.Get("Authorization"))
	assert.Contains(t, captured.query, "select=id%2Cname")
	assert.Contains(t, captured.query, "country=eq.India")
	assert.Contains(t, captured.query, "order=name.asc")
	assert.Contains(t, captured.query, "limit=5")
}

func TestCountUsesContentRange(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Range", "0-0/3573")
		w.Write([]byte(`[]`))
	})

	count, err := client.Count(context.Background(), "places")
	require.NoError(t, err)
	assert.Equal(t, int64(3573), count)
	assert.Equal(t, "count=exact", captured.header.Get("Prefer"))
	assert.Contains(t, captured.query, "limit=0")
}

func TestInsertAsksForRepresentation(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"new-id","name":"Fresh"}]`))
	})

	rows, err := client.Insert(context.Background(), "places", map[string]any{"name": "Fresh"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "new-id", rows[0]["id"])

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "return=representation", captured.header.Get("Prefer"))
	assert.Equal(t, "application/json", captured.header.Get("Content-Type"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, "Fresh", sent["name"])
}

func TestUpdateEncodesFilter(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","visible":false}]`))
	})

	rows, err := client.Update(context.Background(), "places", Where("id", "p1"), map[string]any{"visible": false})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Contains(t, captured.query, "id=eq.p1")
}

func TestErrorBodyDecoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid input syntax","code":"22P02"}`))
	})

	_, err := client.Select(context.Background(), "places", nil)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid input syntax", apiErr.Message)
	assert.Equal(t, "22P02", apiErr.Code)
}

func TestAuthErrorPredicates(t *testing.T) {
	invalid := &APIError{StatusCode: 400, Code: "invalid_credentials", Message: "Invalid login credentials"}
	assert.True(t, IsInvalidCredentials(invalid))
	assert.True(t, IsAuthFailure(invalid))
	assert.False(t, IsEmailNotConfirmed(invalid))

	unconfirmed := &APIError{StatusCode: 400, Message: "Email not confirmed"}
	assert.True(t, IsEmailNotConfirmed(unconfirmed))

	dup := &APIError{StatusCode: 422, Message: "User already registered"}
	assert.True(t, IsAlreadyRegistered(dup))

	server := &APIError{StatusCode: 500, Message: "boom"}
	assert.False(t, IsAuthFailure(server))
}

func TestSelectAsDecodesTypedRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"v1","paid_so_far":12.5}]`))
	})

	var out []struct {
		ID        string  `json:"id"`
		PaidSoFar float64 `json:"paid_so_far"`
	}
	require.NoError(t, client.SelectAs(context.Background(), "vendors", nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, 12.5, out[0].PaidSoFar)
}

func TestSignInWithPassword(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","user":{"id":"u1","email":"a@b.c"}}`))
	})

	session, err := client.SignInWithPassword(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/token", captured.path)
	assert.Equal(t, "grant_type=password", captured.query)
	assert.Equal(t, "at", session.AccessToken)
	require.NotNil(t, session.User)
	assert.Equal(t, "u1", session.User.ID)
}

func TestRemoveObjects(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	err := client.RemoveObjects(context.Background(), "places_images", []string{"place-banners/p1/banner-p1.jpg"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, captured.method)
	assert.Equal(t, "/storage/v1/object/places_images", captured.path)

	var sent map[string][]string
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, []string{"place-banners/p1/banner-p1.jpg"}, sent["prefixes"])
}

func TestParseContentRangeTotal(t *testing.T) {
	n, err := parseContentRangeTotal("0-24/100")
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)

	n, err = parseContentRangeTotal("*/*")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = parseContentRangeTotal("")
	assert.Error(t, err)
}

func TestColumnsStripsWhitespace(t *testing.T) {
	// PostgREST rejects spaces in the select list, so readable constants
	// must encode without them.
	assert.Equal(t, "select=id%2Cname%2Crating",
		Columns("id, name, rating").Encode())
	assert.Equal(t, "select=id%2Cusers%21user_id%28first_name%2Clast_name%29",
		Columns("id, users!user_id(first_name, last_name)").Encode())
	// Quoted identifiers keep their spaces.
	assert.Equal(t, `select=%22odd+name%22`,
		Columns(`"odd name"`).Encode())
}
