// file: internals/features/sync/client/ona_client_test.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *OnaClient {
	return &OnaClient{
		BaseURL:    baseURL,
		Token:      "secret-token",
		PageSize:   3,
		PageDelay:  0, // tanpa jeda di test
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchFormDataPaginatesUntilShortPage(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/data/763697", r.URL.Path)

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		assert.Equal(t, 3, perPage)

		// page 1 & 2 penuh, page 3 pendek → berhenti
		count := 3
		if page == 3 {
			count = 1
		}
		records := make([]map[string]any, 0, count)
		for i := 0; i < count; i++ {
			records = append(records, map[string]any{"_id": fmt.Sprintf("%d-%d", page, i)})
		}
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	records, err := c.FetchFormData(context.Background(), "763697", nil)
	require.NoError(t, err)

	assert.Len(t, records, 7)
	assert.Equal(t, "Token secret-token", gotAuth)
	assert.Equal(t, "1-0", records[0].ExternalID())
	assert.Equal(t, "3-0", records[6].ExternalID())
}

func TestFetchFormDataSinceQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	since := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := newTestClient(srv.URL)
	records, err := c.FetchFormData(context.Background(), "763697", &since)
	require.NoError(t, err)
	assert.Empty(t, records)

	var q map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(gotQuery), &q))
	assert.Equal(t, "2024-05-01T12:00:00Z", q["_submission_time"]["$gt"])
}

func TestFetchFormDataHTTPErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchFormData(context.Background(), "763697", nil)
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusForbidden, te.StatusCode)
	assert.Equal(t, "763697", te.FormID)
}

func TestSubmitFormData(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Token secret-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.SubmitFormData(context.Background(), "763697", map[string]any{"field": "value"})
	require.NoError(t, err)
	assert.Equal(t, "value", gotBody["field"])
}

func TestSubmitFormDataServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.SubmitFormData(context.Background(), "763697", map[string]any{"x": 1})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
}

func TestResolveFormIDEnvOverride(t *testing.T) {
	t.Setenv("ONA_FORM_ID_EXTENSION_AGENTS", "999111")
	assert.Equal(t, "999111", ResolveFormID("extension-agents"))

	// tanpa override jatuh ke default
	assert.Equal(t, "763697", ResolveFormID("events"))
	// partners tidak punya form
	assert.Equal(t, "", ResolveFormID("partners"))
}
