package utils

import (
	"context"
	"strings"
	"time"

	"careerhub/config"
	"careerhub/database"
	"careerhub/logger"
	"careerhub/models/english"
	"careerhub/services"
	"careerhub/services/newsapi"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// NewsImportRequest selects which headlines to import
type NewsImportRequest struct {
	Country  string
	Category string
	Query    string
	PageSize int
	Level    string
}

// ImportTopHeadlines pulls headlines from NewsAPI and upserts them by URL.
// It returns how many articles were written.
func ImportTopHeadlines(ctx context.Context, req NewsImportRequest) (int, error) {
	if req.Country == "" && req.Query == "" && config.AppConfig != nil {
		req.Country = config.AppConfig.NewsAPICountry
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.Level == "" {
		req.Level = "INTERMEDIATE"
	}

	articles, err := services.Clients.News.TopHeadlines(ctx, newsapi.TopHeadlinesParams{
		Country:  req.Country,
		Category: req.Category,
		Query:    req.Query,
		PageSize: req.PageSize,
	})
	if err != nil {
		return 0, err
	}

	// Postgres rejects an upsert batch that touches the same url twice
	seen := make(map[string]bool, len(articles))
	rows := make([]english.News, 0, len(articles))
	for _, a := range articles {
		if a.URL == "" || a.Title == "" || a.Title == "[Removed]" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		rows = append(rows, english.News{
			Title:       StripHTML(a.Title),
			Description: StripHTML(a.Description),
			Content:     SanitizeHTML(a.Content),
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      a.Source.Name,
			Author:      a.Author,
			Level:       req.Level,
			PublishedAt: a.PublishedAt,
			IsPublished: true,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err = database.Database.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "content", "image_url", "source", "author", "published_at", "updated_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// InitializeNewsScheduler runs the headline import on spec (standard 5-field cron).
// An empty spec disables the job and returns nil.
func InitializeNewsScheduler(spec string) (*cron.Cron, error) {
	if strings.TrimSpace(spec) == "" {
		logger.Log.Info("news scheduler disabled")
		return nil, nil
	}

	log := logger.Log.Named("news-scheduler")
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		count, err := ImportTopHeadlines(ctx, NewsImportRequest{})
		if err != nil {
			log.Error("news import failed", zap.Error(err))
			return
		}
		log.Info("news import finished", zap.Int("articles", count))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("news scheduler started", zap.String("spec", spec))
	return c, nil
}
