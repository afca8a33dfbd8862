package controllers

import (
	"time"

	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StartChapter records that the current user opened a chapter. A completed chapter stays completed.
func StartChapter(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapter, ok := publishedChapter(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	progress := courseModels.ChapterProgress{
		UserID:    userID,
		CourseID:  chapter.CourseID,
		ChapterID: chapter.ID,
		Status:    courseModels.ProgressInProgress,
	}
	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
		DoNothing: true,
	}).Create(&progress).Error
	if err != nil {
		logger.Log.Error("save chapter progress failed", zap.String("userId", userID), zap.String("chapterId", chapter.ID), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	var saved courseModels.ChapterProgress
	if err := database.Database.Db.Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter started!", saved)
}

// CompleteChapter marks a chapter completed for the current user. Repeated calls are idempotent.
func CompleteChapter(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapter, ok := publishedChapter(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	now := time.Now()
	progress := courseModels.ChapterProgress{
		UserID:      userID,
		CourseID:    chapter.CourseID,
		ChapterID:   chapter.ID,
		Status:      courseModels.ProgressCompleted,
		CompletedAt: &now,
	}

	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       courseModels.ProgressCompleted,
			"completed_at": gorm.Expr("COALESCE(chapter_progresses.completed_at, ?)", now),
			"updated_at":   now,
		}),
	}).Create(&progress).Error
	if err != nil {
		logger.Log.Error("save chapter progress failed", zap.String("userId", userID), zap.String("chapterId", chapter.ID), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	var saved courseModels.ChapterProgress
	if err := database.Database.Db.Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter completed!", saved)
}

type courseProgress struct {
	CourseID          string   `json:"courseId"`
	TotalChapters     int64    `json:"totalChapters"`
	CompletedChapters int64    `json:"completedChapters"`
	CompletedIDs      []string `json:"completedIds"`
	Progress          float64  `json:"progress"`
}

// GetProgress returns per-course completion for the current user, optionally for one ?courseId=
func GetProgress(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var records []courseModels.ChapterProgress
	db := database.Database.Db.Where("user_id = ? AND status = ?", userID, courseModels.ProgressCompleted)
	if courseID, _ := c.Locals("courseId").(string); courseID != "" {
		db = db.Where("course_id = ?", courseID)
	}
	if err := db.Order("completed_at asc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	order := []string{}
	seen := map[string]bool{}
	if courseID, _ := c.Locals("courseId").(string); courseID != "" {
		order = append(order, courseID)
		seen[courseID] = true
	}
	for _, r := range records {
		if !seen[r.CourseID] {
			seen[r.CourseID] = true
			order = append(order, r.CourseID)
		}
	}

	result := make([]courseProgress, 0, len(order))
	for _, courseID := range order {
		p := courseProgress{CourseID: courseID, CompletedIDs: []string{}}
		database.Database.Db.Model(&courseModels.Chapter{}).
			Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
			Count(&p.TotalChapters)
		// Only chapters that still count towards the total are reported as completed
		if err := database.Database.Db.Model(&courseModels.ChapterProgress{}).
			Joins("JOIN chapters ON chapters.id = chapter_progresses.chapter_id").
			Where("chapter_progresses.user_id = ? AND chapter_progresses.course_id = ? AND chapter_progresses.status = ? AND chapters.is_deleted = ? AND chapters.is_published = ?",
				userID, courseID, courseModels.ProgressCompleted, false, true).
			Order("chapter_progresses.completed_at asc").
			Pluck("chapter_progresses.chapter_id", &p.CompletedIDs).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
		if p.CompletedIDs == nil {
			p.CompletedIDs = []string{}
		}
		p.CompletedChapters = int64(len(p.CompletedIDs))
		if p.TotalChapters > 0 {
			p.Progress = float64(p.CompletedChapters) / float64(p.TotalChapters) * 100
		}
		result = append(result, p)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}
