package gdrive

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"careerhub/services/upstream"

	"github.com/go-resty/resty/v2"
)

const service = "gdrive"

// DefaultBaseURL is the Drive v3 API root
const DefaultBaseURL = "https://www.googleapis.com/drive/v3"

// Client reads shared Google Drive folders and Docs with an API key
type Client struct {
	http   *resty.Client
	apiKey string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		http:   upstream.NewClient(service, baseURL, 30*time.Second),
		apiKey: apiKey,
	}
}

type File struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MimeType     string     `json:"mimeType"`
	ModifiedTime *time.Time `json:"modifiedTime"`
	WebViewLink  string     `json:"webViewLink"`
}

type fileList struct {
	Files         []File `json:"files"`
	NextPageToken string `json:"nextPageToken"`
}

// ListFolder returns every non-trashed file directly inside folderID
func (c *Client) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	if c == nil || c.apiKey == "" {
		return nil, upstream.ErrNotConfigured
	}

	var files []File
	pageToken := ""
	for {
		var page fileList
		req := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"key":      c.apiKey,
				"q":        fmt.Sprintf("'%s' in parents and trashed = false", folderID),
				"fields":   "nextPageToken,files(id,name,mimeType,modifiedTime,webViewLink)",
				"pageSize": "100",
				"orderBy":  "name",
			}).
			SetResult(&page)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get("/files")
		if err := upstream.Check(service, resp, err); err != nil {
			return nil, err
		}

		files = append(files, page.Files...)
		if page.NextPageToken == "" {
			return files, nil
		}
		pageToken = page.NextPageToken
	}
}

// ExportText exports a Google Doc as plain text
func (c *Client) ExportText(ctx context.Context, docID string) (string, error) {
	return c.export(ctx, docID, "text/plain")
}

// ExportHTML exports a Google Doc as HTML
func (c *Client) ExportHTML(ctx context.Context, docID string) (string, error) {
	return c.export(ctx, docID, "text/html")
}

func (c *Client) export(ctx context.Context, docID, mimeType string) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", upstream.ErrNotConfigured
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":      c.apiKey,
			"mimeType": mimeType,
		}).
		Get("/files/" + url.PathEscape(docID) + "/export")
	if err := upstream.Check(service, resp, err); err != nil {
		return "", err
	}
	return resp.String(), nil
}
