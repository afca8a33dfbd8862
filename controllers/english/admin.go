package controllers

import (
	"fmt"
	"time"

	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	"careerhub/models/english"
	"careerhub/services"
	"careerhub/utils"
	"careerhub/validators"
	englishValidator "careerhub/validators/english"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ============ News ============

// AdminListNews lists every article including unpublished ones
func AdminListNews(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&english.News{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var news []english.News
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully!", fiber.Map{
		"news": news,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func AdminCreateNews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNews").(*englishValidator.NewsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	news := english.News{
		Title:       utils.StripHTML(reqData.Title),
		Description: utils.StripHTML(reqData.Description),
		Content:     utils.SanitizeHTML(reqData.Content),
		URL:         reqData.URL,
		ImageURL:    reqData.ImageURL,
		Source:      reqData.Source,
		Author:      reqData.Author,
		Level:       reqData.Level,
		PublishedAt: reqData.PublishedAt,
		IsPublished: true,
	}
	if news.Level == "" {
		news.Level = "INTERMEDIATE"
	}
	if news.PublishedAt == nil {
		now := time.Now()
		news.PublishedAt = &now
	}
	if reqData.IsPublished != nil {
		news.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Create(&news).Error; err != nil {
		if database.IsDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "News with this URL already exists!", nil)
		}
		logger.Log.Error("create news failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "News created successfully!", news)
}

func AdminUpdateNews(c *fiber.Ctx) error {
	newsID := validators.GetID(c, "id")

	var news english.News
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", newsID, false).First(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	reqData, ok := c.Locals("validatedNewsUpdate").(*englishValidator.NewsUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = utils.StripHTML(*reqData.Title)
	}
	if reqData.Description != nil {
		updates["description"] = utils.StripHTML(*reqData.Description)
	}
	if reqData.Content != nil {
		updates["content"] = utils.SanitizeHTML(*reqData.Content)
	}
	if reqData.ImageURL != nil {
		updates["image_url"] = *reqData.ImageURL
	}
	if reqData.Source != nil {
		updates["source"] = *reqData.Source
	}
	if reqData.Author != nil {
		updates["author"] = *reqData.Author
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.PublishedAt != nil {
		updates["published_at"] = *reqData.PublishedAt
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&news).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update news!", nil)
		}
	}

	database.Database.Db.First(&news, "id = ?", newsID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "News updated successfully!", news)
}

// AdminDeleteNews soft deletes an article. The URL stays reserved so the importer
// does not bring it back.
func AdminDeleteNews(c *fiber.Ctx) error {
	result := database.Database.Db.Model(&english.News{}).
		Where("id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete news!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "News deleted successfully!", nil)
}

// AdminFetchNews imports top headlines from NewsAPI on demand
func AdminFetchNews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNewsFetch").(*englishValidator.NewsFetchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	imported, err := utils.ImportTopHeadlines(c.UserContext(), utils.NewsImportRequest{
		Country:  reqData.Country,
		Category: reqData.Category,
		Query:    reqData.Query,
		PageSize: reqData.PageSize,
		Level:    reqData.Level,
	})
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "NewsAPI", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News imported successfully!", fiber.Map{
		"imported": imported,
	})
}

// AdminGenerateNewsAudio narrates an article and stores the file in Supabase Storage
func AdminGenerateNewsAudio(c *fiber.Ctx) error {
	newsID := validators.GetID(c, "id")

	var news english.News
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", newsID, false).First(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	reqData, ok := c.Locals("validatedNewsAudio").(*englishValidator.NewsAudioRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	text := news.Title
	if body := utils.StripHTML(news.Content); body != "" {
		text += ". " + body
	} else if news.Description != "" {
		text += ". " + news.Description
	}

	audio, contentType, err := synthesize(c, text, reqData.Engine, reqData.Voice, reqData.Speaker)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, engineName(reqData.Engine), err)
	}

	ext := "mp3"
	if contentType == "audio/wav" {
		ext = "wav"
	}
	url, err := services.Clients.Storage.Upload(c.UserContext(), fmt.Sprintf("news/%s.%s", news.ID, ext), contentType, audio, true)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Supabase Storage", err)
	}

	if err := database.Database.Db.Model(&news).Update("audio_url", url).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save audio URL!", nil)
	}
	news.AudioURL = url

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audio generated successfully!", news)
}

// ============ Movies ============

func AdminListMovies(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&english.Movie{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var movies []english.Movie
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&movies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch movies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movies fetched successfully!", fiber.Map{
		"movies": movies,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func AdminCreateMovie(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMovie").(*englishValidator.MovieRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	movie := english.Movie{
		Title:        reqData.Title,
		Description:  reqData.Description,
		YoutubeID:    reqData.YoutubeID,
		Level:        reqData.Level,
		Transcript:   reqData.Transcript,
		ThumbnailURL: reqData.ThumbnailURL,
		IsPublished:  reqData.IsPublished,
	}
	if movie.ThumbnailURL == "" {
		movie.ThumbnailURL = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", movie.YoutubeID)
	}

	if err := database.Database.Db.Create(&movie).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create movie!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Movie created successfully!", movie)
}

func AdminUpdateMovie(c *fiber.Ctx) error {
	movieID := validators.GetID(c, "id")

	var movie english.Movie
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", movieID, false).First(&movie).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	reqData, ok := c.Locals("validatedMovieUpdate").(*englishValidator.MovieUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.YoutubeID != nil {
		updates["youtube_id"] = *reqData.YoutubeID
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.Transcript != nil {
		updates["transcript"] = *reqData.Transcript
	}
	if reqData.ThumbnailURL != nil {
		updates["thumbnail_url"] = *reqData.ThumbnailURL
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&movie).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update movie!", nil)
		}
	}

	database.Database.Db.First(&movie, "id = ?", movieID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie updated successfully!", movie)
}

func AdminDeleteMovie(c *fiber.Ctx) error {
	result := database.Database.Db.Model(&english.Movie{}).
		Where("id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete movie!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie deleted successfully!", nil)
}
