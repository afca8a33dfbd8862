package controllers

import (
	"strings"

	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	"careerhub/models/university"
	"careerhub/utils"
	"careerhub/validators"
	universityValidator "careerhub/validators/university"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var sortFields = []string{"name", "ranking", "tuitionFee"}

// GetUniversities lists published universities with optional country and name filters
func GetUniversities(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&university.University{}).Where("is_published = ? AND is_deleted = ?", true, false)
	if country := strings.TrimSpace(c.Query("country")); country != "" {
		db = db.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", like, like)
	}

	var total int64
	db.Count(&total)

	var universities []university.University
	order := utils.OrderClause(c.Query("sort"), sortFields, "name asc")
	if err := db.Order(order).Offset(page.Offset).Limit(page.Limit).Find(&universities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch universities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Universities fetched successfully!", fiber.Map{
		"universities": universities,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func GetUniversityDetails(c *fiber.Ctx) error {
	var uni university.University
	if err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", validators.GetID(c, "id"), true, false).
		First(&uni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "University fetched successfully!", uni)
}

// AdminListUniversities includes unpublished entries
func AdminListUniversities(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&university.University{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var universities []university.University
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&universities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch universities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Universities fetched successfully!", fiber.Map{
		"universities": universities,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func AdminCreateUniversity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUniversity").(*universityValidator.UniversityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	uni := university.University{
		Name:        reqData.Name,
		Country:     reqData.Country,
		City:        reqData.City,
		Website:     reqData.Website,
		Ranking:     reqData.Ranking,
		TuitionFee:  reqData.TuitionFee,
		Currency:    reqData.Currency,
		Description: utils.SanitizeHTML(reqData.Description),
		LogoURL:     reqData.LogoURL,
		IsPublished: true,
	}
	if uni.Currency == "" {
		uni.Currency = "USD"
	}
	if reqData.IsPublished != nil {
		uni.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Create(&uni).Error; err != nil {
		logger.Log.Error("create university failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create university!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "University created successfully!", uni)
}

func AdminUpdateUniversity(c *fiber.Ctx) error {
	uniID := validators.GetID(c, "id")

	var uni university.University
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", uniID, false).First(&uni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University not found!", nil)
	}

	reqData, ok := c.Locals("validatedUniversityUpdate").(*universityValidator.UniversityUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Country != nil {
		updates["country"] = *reqData.Country
	}
	if reqData.City != nil {
		updates["city"] = *reqData.City
	}
	if reqData.Website != nil {
		updates["website"] = *reqData.Website
	}
	if reqData.Ranking != nil {
		updates["ranking"] = *reqData.Ranking
	}
	if reqData.TuitionFee != nil {
		updates["tuition_fee"] = *reqData.TuitionFee
	}
	if reqData.Currency != nil {
		updates["currency"] = *reqData.Currency
	}
	if reqData.Description != nil {
		updates["description"] = utils.SanitizeHTML(*reqData.Description)
	}
	if reqData.LogoURL != nil {
		updates["logo_url"] = *reqData.LogoURL
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&uni).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update university!", nil)
		}
	}

	database.Database.Db.First(&uni, "id = ?", uniID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "University updated successfully!", uni)
}

func AdminDeleteUniversity(c *fiber.Ctx) error {
	result := database.Database.Db.Model(&university.University{}).
		Where("id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete university!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "University deleted successfully!", nil)
}
