package supabase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"careerhub/services/upstream"

	"github.com/go-resty/resty/v2"
)

const service = "supabase-storage"

// Storage wraps the Supabase Storage REST API for one bucket
type Storage struct {
	http       *resty.Client
	projectURL string
	serviceKey string
	bucket     string
}

// NewStorage builds a client for projectURL (https://<ref>.supabase.co)
func NewStorage(projectURL, serviceKey, bucket string) *Storage {
	projectURL = strings.TrimRight(projectURL, "/")
	return &Storage{
		http:       upstream.NewClient(service, projectURL+"/storage/v1", 60*time.Second),
		projectURL: projectURL,
		serviceKey: serviceKey,
		bucket:     bucket,
	}
}

func (s *Storage) configured() bool {
	return s != nil && s.projectURL != "" && s.serviceKey != ""
}

func (s *Storage) request(ctx context.Context) *resty.Request {
	return s.http.R().
		SetContext(ctx).
		SetAuthToken(s.serviceKey).
		SetHeader("apikey", s.serviceKey)
}

// Upload stores data at path inside the bucket and returns its public URL
func (s *Storage) Upload(ctx context.Context, path, contentType string, data []byte, upsert bool) (string, error) {
	if !s.configured() {
		return "", upstream.ErrNotConfigured
	}
	path = strings.TrimLeft(path, "/")

	req := s.request(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data)
	if upsert {
		req.SetHeader("x-upsert", "true")
	}

	resp, err := req.Post("/object/" + s.bucket + "/" + escapePath(path))
	if err := upstream.Check(service, resp, err); err != nil {
		return "", err
	}
	return s.PublicURL(path), nil
}

// Remove deletes objects from the bucket
func (s *Storage) Remove(ctx context.Context, paths ...string) error {
	if !s.configured() {
		return upstream.ErrNotConfigured
	}
	for _, path := range paths {
		resp, err := s.request(ctx).Delete("/object/" + s.bucket + "/" + escapePath(strings.TrimLeft(path, "/")))
		if err := upstream.Check(service, resp, err); err != nil {
			return err
		}
	}
	return nil
}

// PublicURL is the URL of an object in a public bucket
func (s *Storage) PublicURL(path string) string {
	return s.projectURL + "/storage/v1/object/public/" + s.bucket + "/" + escapePath(strings.TrimLeft(path, "/"))
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
