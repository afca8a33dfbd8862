package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerhub/models"
	"careerhub/models/english"
	"careerhub/routers"
	"careerhub/services"
	"careerhub/services/newsapi"
	"careerhub/services/supabase"
	"careerhub/services/voicevox"
	"careerhub/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	app        *fiber.App
	db         *gorm.DB
	adminToken string
}

func setup(t *testing.T) fixture {
	db := testutil.SetupDB(t)
	services.Clients = services.Registry{}
	t.Cleanup(func() { services.Clients = services.Registry{} })
	_, adminToken := testutil.CreateUser(t, models.RoleAdmin)
	return fixture{app: routers.NewApp(), db: db, adminToken: adminToken}
}

func (f fixture) createNews(t *testing.T, body map[string]interface{}) english.News {
	t.Helper()
	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/news", f.adminToken, body)
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var n english.News
	resp.Decode(t, &n)
	return n
}

func TestNewsListingAndAdmin(t *testing.T) {
	f := setup(t)

	first := f.createNews(t, map[string]interface{}{
		"title": "<b>Rain</b> in Tokyo", "url": "https://example.com/rain", "level": "beginner",
		"content": "<p>It rained.</p><script>x()</script>", "publishedAt": "2026-01-01T00:00:00Z",
	})
	assert.Equal(t, "Rain in Tokyo", first.Title)
	assert.Equal(t, "BEGINNER", first.Level)
	assert.True(t, first.IsPublished)
	assert.NotContains(t, first.Content, "script")

	f.createNews(t, map[string]interface{}{"title": "Markets rally", "url": "https://example.com/markets", "publishedAt": "2026-02-01T00:00:00Z"})
	f.createNews(t, map[string]interface{}{"title": "Hidden draft", "url": "https://example.com/draft", "isPublished": false})
	var draft english.News
	require.NoError(t, f.db.First(&draft, "url = ?", "https://example.com/draft").Error)
	assert.False(t, draft.IsPublished)

	dup := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/news", f.adminToken, map[string]interface{}{"title": "Again", "url": "https://example.com/rain"})
	assert.Equal(t, http.StatusConflict, dup.Code)

	var page struct {
		News []english.News `json:"news"`
	}
	resp := testutil.Do(t, f.app, http.MethodGet, "/api/english/news", "", nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	resp.Decode(t, &page)
	require.Len(t, page.News, 2)
	assert.Equal(t, "Markets rally", page.News[0].Title)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/english/news?level=BEGINNER", "", nil)
	resp.Decode(t, &page)
	require.Len(t, page.News, 1)
	assert.Equal(t, first.ID, page.News[0].ID)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/english/news?q=markets", "", nil)
	resp.Decode(t, &page)
	require.Len(t, page.News, 1)

	update := testutil.Do(t, f.app, http.MethodPut, "/api/admin/english/news/"+first.ID, f.adminToken, map[string]interface{}{"isPublished": false})
	require.Equal(t, http.StatusOK, update.Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodGet, "/api/english/news/"+first.ID, "", nil).Code)

	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/english/news/"+first.ID, f.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/english/news/"+first.ID, f.adminToken, nil).Code)
}

func TestMovies(t *testing.T) {
	f := setup(t)

	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/movies", f.adminToken, map[string]interface{}{
		"title": "Short film", "youtubeId": "dQw4w9WgXcQ", "level": "advanced", "isPublished": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var movie english.Movie
	resp.Decode(t, &movie)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", movie.ThumbnailURL)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/english/movies?level=ADVANCED", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Raw), movie.ID)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/english/movies/"+movie.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/english/movies/"+movie.ID, f.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodGet, "/api/english/movies/"+movie.ID, "", nil).Code)
}

func TestDictation(t *testing.T) {
	f := setup(t)

	resp := testutil.Do(t, f.app, http.MethodPost, "/api/english/dictation", "", map[string]string{
		"expected": "The quick brown fox.", "answer": "the quick brown fox",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var result struct {
		Similarity float64 `json:"similarity"`
		Distance   int     `json:"distance"`
		IsCorrect  bool    `json:"isCorrect"`
	}
	resp.Decode(t, &result)
	assert.Equal(t, 1.0, result.Similarity)
	assert.Equal(t, 0, result.Distance)
	assert.True(t, result.IsCorrect)

	resp = testutil.Do(t, f.app, http.MethodPost, "/api/english/dictation", "", map[string]interface{}{
		"expected": "kitten", "answer": "sitting", "threshold": 0.5,
	})
	resp.Decode(t, &result)
	assert.Equal(t, 3, result.Distance)
	assert.True(t, result.IsCorrect)

	missing := testutil.Do(t, f.app, http.MethodPost, "/api/english/dictation", "", map[string]string{"answer": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, missing.Code)
}

func TestUnconfiguredServicesReturn503(t *testing.T) {
	f := setup(t)

	cases := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPost, "/api/english/explain", map[string]string{"text": "It is raining cats and dogs."}},
		{http.MethodPost, "/api/english/tts", map[string]string{"text": "Hello"}},
		{http.MethodPost, "/api/english/tts", map[string]string{"text": "Hello", "engine": "voicevox"}},
		{http.MethodGet, "/api/english/speech/token", nil},
		{http.MethodGet, "/api/english/voicevox/speakers", nil},
	}
	for _, tc := range cases {
		resp := testutil.Do(t, f.app, tc.method, tc.path, "", tc.body)
		assert.Equal(t, http.StatusServiceUnavailable, resp.Code, tc.path)
		assert.False(t, resp.Status)
	}

	fetch := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/news/fetch", f.adminToken, nil)
	assert.Equal(t, http.StatusServiceUnavailable, fetch.Code)
}

func newVoicevox(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/audio_query":
			assert.Equal(t, "3", r.URL.Query().Get("speaker"))
			_, _ = w.Write([]byte(`{"accent_phrases":[],"speedScale":1}`))
		case "/synthesis":
			w.Header().Set("Content-Type", "audio/wav")
			_, _ = w.Write([]byte("RIFFfake"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTTSWithVoicevox(t *testing.T) {
	f := setup(t)
	services.Clients.Voicevox = voicevox.New(newVoicevox(t).URL)

	resp := testutil.Do(t, f.app, http.MethodPost, "/api/english/tts", "", map[string]interface{}{"text": "Hello", "engine": "voicevox", "speaker": 3})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "RIFFfake", string(resp.Raw))
}

func TestGenerateNewsAudioUploadsToStorage(t *testing.T) {
	f := setup(t)
	services.Clients.Voicevox = voicevox.New(newVoicevox(t).URL)

	var uploadedPath, upsert string
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadedPath = r.URL.Path
		upsert = r.Header.Get("x-upsert")
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "RIFFfake", string(body))
		_, _ = w.Write([]byte(`{"Key":"media/news"}`))
	}))
	defer storage.Close()
	services.Clients.Storage = supabase.NewStorage(storage.URL, "service-key", "media")

	news := f.createNews(t, map[string]interface{}{"title": "Rain in Tokyo", "url": "https://example.com/rain", "description": "Wet day."})

	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/news/"+news.ID+"/audio", f.adminToken, map[string]interface{}{"engine": "voicevox", "speaker": 3})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	resp.Decode(t, &news)

	assert.Equal(t, "/storage/v1/object/media/news/"+news.ID+".wav", uploadedPath)
	assert.Equal(t, "true", upsert)
	assert.Equal(t, storage.URL+"/storage/v1/object/public/media/news/"+news.ID+".wav", news.AudioURL)
}

func TestFetchNewsUpsertsByURL(t *testing.T) {
	f := setup(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "news-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "gb", r.URL.Query().Get("country"))
		title := "First title"
		if calls > 1 {
			title = "Updated title"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"articles": []map[string]interface{}{
				{"title": title, "url": "https://example.com/a", "source": map[string]string{"name": "BBC"}},
				{"title": "[Removed]", "url": "https://example.com/removed"},
				{"title": "Second", "url": "https://example.com/b"},
			},
		})
	}))
	defer srv.Close()
	services.Clients.News = newsapi.New(srv.URL, "news-key")

	for i := 0; i < 2; i++ {
		resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/english/news/fetch", f.adminToken, map[string]string{"country": "GB", "level": "beginner"})
		require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
		var out struct {
			Imported int `json:"imported"`
		}
		resp.Decode(t, &out)
		assert.Equal(t, 2, out.Imported)
	}

	var stored []english.News
	require.NoError(t, f.db.Order("url asc").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "Updated title", stored[0].Title)
	assert.Equal(t, "BBC", stored[0].Source)
	assert.Equal(t, "BEGINNER", stored[0].Level)
}
