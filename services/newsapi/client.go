package newsapi

import (
	"context"
	"strconv"
	"time"

	"careerhub/services/upstream"

	"github.com/go-resty/resty/v2"
)

const service = "newsapi"

// Client wraps the NewsAPI v2 REST endpoints
type Client struct {
	http   *resty.Client
	apiKey string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		http:   upstream.NewClient(service, baseURL, 15*time.Second),
		apiKey: apiKey,
	}
}

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	Source      Source     `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"urlToImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	Content     string     `json:"content"`
}

type articlesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
}

// TopHeadlinesParams mirrors the query parameters of /top-headlines
type TopHeadlinesParams struct {
	Country  string
	Category string
	Query    string
	PageSize int
	Page     int
}

// TopHeadlines fetches the current headlines
func (c *Client) TopHeadlines(ctx context.Context, p TopHeadlinesParams) ([]Article, error) {
	if c == nil || c.apiKey == "" {
		return nil, upstream.ErrNotConfigured
	}

	query := map[string]string{}
	if p.Country != "" {
		query["country"] = p.Country
	}
	if p.Category != "" {
		query["category"] = p.Category
	}
	if p.Query != "" {
		query["q"] = p.Query
	}
	if p.PageSize > 0 {
		query["pageSize"] = strconv.Itoa(p.PageSize)
	}
	if p.Page > 0 {
		query["page"] = strconv.Itoa(p.Page)
	}

	var out articlesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", c.apiKey).
		SetQueryParams(query).
		SetResult(&out).
		Get("/top-headlines")
	if err := upstream.Check(service, resp, err); err != nil {
		return nil, err
	}
	if out.Status != "ok" {
		return nil, &upstream.Error{Service: service, Method: "GET", URL: resp.Request.URL, StatusCode: resp.StatusCode(), Body: out.Code + ": " + out.Message}
	}

	return out.Articles, nil
}
