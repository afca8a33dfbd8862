package controllers

import (
	"strings"

	"careerhub/database"
	"careerhub/middleware"
	"careerhub/models/english"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

// GetNews lists published articles, newest first
func GetNews(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&english.News{}).Where("is_published = ? AND is_deleted = ?", true, false)
	if level := strings.ToUpper(strings.TrimSpace(c.Query("level"))); level != "" {
		db = db.Where("level = ?", level)
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	db.Count(&total)

	var news []english.News
	if err := db.Order("published_at desc, created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&news).Error; err != nil {
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

func GetNewsDetails(c *fiber.Ctx) error {
	var news english.News
	if err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", validators.GetID(c, "id"), true, false).
		First(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully!", news)
}

// GetMovies lists published movies
func GetMovies(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&english.Movie{}).Where("is_published = ? AND is_deleted = ?", true, false)
	if level := strings.ToUpper(strings.TrimSpace(c.Query("level"))); level != "" {
		db = db.Where("level = ?", level)
	}

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

func GetMovieDetails(c *fiber.Ctx) error {
	var movie english.Movie
	if err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", validators.GetID(c, "id"), true, false).
		First(&movie).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie fetched successfully!", movie)
}
