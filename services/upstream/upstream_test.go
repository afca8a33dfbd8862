package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDecodesWithoutJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(`{"status":"ok","count":2}`))
	}))
	defer srv.Close()

	var out struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	resp, err := NewClient("test", srv.URL, 5*time.Second).R().SetResult(&out).Get("/")
	require.NoError(t, Check("test", resp, err))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, 2, out.Count)
}

func TestCheckReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))
	defer srv.Close()

	resp, err := NewClient("test", srv.URL, 5*time.Second).R().Get("/thing")
	err = Check("test", resp, err)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("wrapped: %w", err)))
	assert.Contains(t, err.Error(), "missing")

	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}
