package controllers

import (
	"time"

	"careerhub/database"
	"careerhub/middleware"
	"careerhub/models"
	"careerhub/models/certification"
	"careerhub/models/course"
	"careerhub/models/english"
	"careerhub/models/university"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

func countActive(model interface{}) int64 {
	var n int64
	database.Database.Db.Model(model).Where("is_deleted = ?", false).Count(&n)
	return n
}

// GetDashboardStats returns entity totals and today's learner activity
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	today := now.BeginningOfDay()
	week := now.BeginningOfWeek()

	var (
		newUsersToday     int64
		chaptersCompleted int64
		answersToday      int64
		activeLearners    int64
		answersThisWeek   int64
	)
	db.Model(&models.User{}).Where("is_deleted = ? AND created_at >= ?", false, today).Count(&newUsersToday)
	db.Model(&course.ChapterProgress{}).
		Where("status = ? AND completed_at >= ?", course.ProgressCompleted, today).
		Count(&chaptersCompleted)
	db.Model(&certification.Answer{}).Where("created_at >= ?", today).Count(&answersToday)
	db.Model(&certification.Answer{}).Where("created_at >= ?", week).Count(&answersThisWeek)
	db.Model(&course.ChapterProgress{}).
		Where("updated_at >= ?", today).
		Distinct("user_id").
		Count(&activeLearners)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"users":          countActive(&models.User{}),
			"courses":        countActive(&course.Course{}),
			"chapters":       countActive(&course.Chapter{}),
			"certifications": countActive(&certification.Certification{}),
			"news":           countActive(&english.News{}),
			"movies":         countActive(&english.Movie{}),
			"universities":   countActive(&university.University{}),
		},
		"today": fiber.Map{
			"date":              today.Format(time.DateOnly),
			"newUsers":          newUsersToday,
			"chaptersCompleted": chaptersCompleted,
			"certAnswers":       answersToday,
			"activeLearners":    activeLearners,
		},
		"week": fiber.Map{
			"certAnswers": answersThisWeek,
		},
	})
}
