// Package upstream holds the pieces shared by the third-party API wrappers.
package upstream

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"careerhub/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when a wrapper is used without its credentials
var ErrNotConfigured = errors.New("upstream service is not configured")

// Error carries status and body for non-2xx responses
type Error struct {
	Service    string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %s status=%d body=%s", e.Service, e.Method, e.URL, e.StatusCode, snippet(e.Body, 500))
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// NewClient builds a resty client with the retry and logging policy every wrapper shares
func NewClient(service, baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(300 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			code := r.StatusCode()
			return code == 429 || code == 502 || code == 503 || code == 504
		})

	// SetResult decodes even when the upstream omits a JSON Content-Type
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.ForceContentType("application/json")
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		logger.Log.Debug("upstream call",
			zap.String("service", service),
			zap.String("method", r.Request.Method),
			zap.String("url", r.Request.URL),
			zap.Int("status", r.StatusCode()),
			zap.Duration("latency", r.Time()),
		)
		return nil
	})

	return client
}

// Check converts a transport error or non-2xx response into an error
func Check(service string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", service, err)
	}
	if resp.IsError() {
		return &Error{
			Service:    service,
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

// StatusCode returns the upstream HTTP status carried by err, or 0
func StatusCode(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
