package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/hugohenrick/stock-assistant/internal/httpx"
)

func TestFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "ok",
		"totalResults": 3,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"id": nil, "name": "Economic Times"},
				"title":       "Sensex climbs 500 points as IT stocks rally",
				"description": "Infosys and TCS led the gains.",
				"url":         "https://example.com/sensex",
				"publishedAt": "2026-02-26T11:02:00Z",
			},
			{
				"source":      map[string]interface{}{"name": "Removed"},
				"title":       "[Removed]",
				"description": "",
				"url":         "https://removed.com",
				"publishedAt": "2026-02-26T10:00:00Z",
			},
			{
				"source":      map[string]interface{}{"name": "Mint"},
				"title":       "RBI holds rates",
				"description": nil,
				"url":         "https://example.com/rbi",
				"publishedAt": "not a date",
			},
		},
	}

	var gotKey, gotCountry, gotCategory string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotCountry = r.URL.Query().Get("country")
		gotCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := New(httpx.New(5*time.Second), srv.URL, "test-key", "in", "business")
	items, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "in", gotCountry)
	assert.Equal(t, "business", gotCategory)
	assert.Equal(t, 2, len(items))

	a := items[0]
	assert.Equal(t, "Sensex climbs 500 points as IT stocks rally", a.Title)
	assert.Equal(t, "Infosys and TCS led the gains.", a.Description)
	assert.Equal(t, "https://example.com/sensex", a.URL)
	assert.Equal(t, "Economic Times", a.Source)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.February, a.PublishedAt.Month())

	assert.Equal(t, "RBI holds rates", items[1].Title)
	assert.Equal(t, "", items[1].Description)
	assert.Equal(t, true, items[1].PublishedAt.IsZero())
}

func TestFetchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	}))
	defer srv.Close()

	client := New(httpx.New(5*time.Second), srv.URL, "bad", "in", "business")
	items, err := client.Fetch(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(items))
	assert.Equal(t, "newsapi: apiKeyInvalid: Your API key is invalid.", err.Error())
}

func TestFetchWithoutKey(t *testing.T) {
	client := New(httpx.New(time.Second), "http://unused.invalid", "", "in", "business")
	_, err := client.Fetch(context.Background())
	assert.Equal(t, ErrMissingAPIKey, err)
}
