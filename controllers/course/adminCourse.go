package controllers

import (
	"strings"

	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/utils"
	"careerhub/validators"
	courseValidator "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminListCourses lists all courses including drafts
func AdminListCourses(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+q+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&courses).Error; err != nil {
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

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slug := utils.Slugify(reqData.Slug)
	if slug == "" {
		slug = utils.Slugify(reqData.Title)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Slug:         slug,
		Description:  reqData.Description,
		Language:     reqData.Language,
		Level:        reqData.Level,
		ThumbnailURL: reqData.ThumbnailURL,
		OrderIndex:   reqData.OrderIndex,
		IsPublished:  reqData.IsPublished,
	}
	if course.Level == "" {
		course.Level = courseModels.LevelBeginner
	}
	// Titles without ASCII letters (e.g. Japanese) still need a unique slug
	course.ID = uuid.NewString()
	if course.Slug == "" {
		course.Slug = "course-" + course.ID[:8]
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		if database.IsDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
		}
		logger.Log.Error("create course failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse applies the provided fields to a course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := validators.GetID(c, "id")

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Slug != nil {
		slug := utils.Slugify(*reqData.Slug)
		if slug == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"slug": "slug must contain letters or digits!"})
		}
		updates["slug"] = slug
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Language != nil {
		updates["language"] = *reqData.Language
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.ThumbnailURL != nil {
		updates["thumbnail_url"] = *reqData.ThumbnailURL
	}
	if reqData.OrderIndex != nil {
		updates["order_index"] = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&course).Updates(updates).Error; err != nil {
			if database.IsDuplicate(err) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	database.Database.Db.First(&course, "id = ?", courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course and its chapters
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := validators.GetID(c, "id")

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// The slug is released so it can be reused by a new course
	if err := database.Database.Db.Model(&course).Updates(map[string]interface{}{
		"is_deleted": true,
		"slug":       course.Slug + "-deleted-" + course.ID[:8],
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	database.Database.Db.Model(&courseModels.Chapter{}).Where("course_id = ?", courseID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
