package controllers

import (
	"careerhub/database"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/utils"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

var courseSortFields = []string{"title", "orderIndex", "createdAt"}

// GetCourses lists published courses
func GetCourses(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)
	if language, _ := c.Locals("language").(string); language != "" {
		db = db.Where("language = ?", language)
	}
	if level, _ := c.Locals("level").(string); level != "" {
		db = db.Where("level = ?", level)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	order := utils.OrderClause(c.Query("sort"), courseSortFields, "order_index asc, created_at asc")
	if err := db.Order(order).Offset(page.Offset).Limit(page.Limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

// GetCourseDetails returns a published course with its published chapter outline
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := validators.GetID(c, "id")

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type chapterOutline struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		OrderIndex int    `json:"orderIndex"`
	}
	var chapters []chapterOutline
	database.Database.Db.Model(&courseModels.Chapter{}).
		Select("id, title, order_index").
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc").
		Scan(&chapters)
	if chapters == nil {
		chapters = []chapterOutline{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":   course,
		"chapters": chapters,
	})
}
