package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerhub/models/english"
	"careerhub/services"
	"careerhub/services/newsapi"
	"careerhub/services/upstream"
	"careerhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportTopHeadlinesDefaults(t *testing.T) {
	db := testutil.SetupDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "20", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"articles": []map[string]interface{}{
				{"title": "<i>Quiet</i> day", "url": "https://example.com/q", "content": "<p>ok</p><script>x()</script>"},
				{"title": "No link"},
			},
		})
	}))
	defer srv.Close()

	services.Clients = services.Registry{News: newsapi.New(srv.URL, "k")}
	t.Cleanup(func() { services.Clients = services.Registry{} })

	n, err := ImportTopHeadlines(context.Background(), NewsImportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var stored english.News
	require.NoError(t, db.First(&stored, "url = ?", "https://example.com/q").Error)
	assert.Equal(t, "Quiet day", stored.Title)
	assert.Equal(t, "INTERMEDIATE", stored.Level)
	assert.True(t, stored.IsPublished)
	assert.NotContains(t, stored.Content, "script")
}

func TestImportTopHeadlinesSkipsRepeatedURLs(t *testing.T) {
	db := testutil.SetupDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"articles": []map[string]interface{}{
				{"title": "Rates rise", "url": "https://example.com/rates"},
				{"title": "Rates rise (update)", "url": "https://example.com/rates"},
			},
		})
	}))
	defer srv.Close()

	services.Clients = services.Registry{News: newsapi.New(srv.URL, "k")}
	t.Cleanup(func() { services.Clients = services.Registry{} })

	n, err := ImportTopHeadlines(context.Background(), NewsImportRequest{Query: "rates"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var stored []english.News
	require.NoError(t, db.Where("url = ?", "https://example.com/rates").Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Rates rise", stored[0].Title)
}

func TestImportTopHeadlinesReportsUpstreamErrors(t *testing.T) {
	testutil.SetupDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
	}))
	defer srv.Close()

	services.Clients = services.Registry{News: newsapi.New(srv.URL, "k")}
	t.Cleanup(func() { services.Clients = services.Registry{} })

	_, err := ImportTopHeadlines(context.Background(), NewsImportRequest{Query: "go"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode(err))

	services.Clients = services.Registry{}
	_, err = ImportTopHeadlines(context.Background(), NewsImportRequest{})
	assert.ErrorIs(t, err, upstream.ErrNotConfigured)
}

func TestInitializeNewsScheduler(t *testing.T) {
	c, err := InitializeNewsScheduler("")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = InitializeNewsScheduler("not a cron spec")
	assert.Error(t, err)

	c, err = InitializeNewsScheduler("0 */6 * * *")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
