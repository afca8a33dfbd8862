package courseRoutes

import (
	controllers "careerhub/controllers/course"
	"careerhub/middleware"
	"careerhub/validators"
	courseValidators "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing programming course routes
func SetupCourseRoutes(router fiber.Router) {
	group := router.Group("/programming")

	// Catalogue
	group.Get("/courses", validators.Pagination(), courseValidators.CourseFilters(), controllers.GetCourses)
	group.Get("/courses/:id", validators.ParamID("id", "Course"), controllers.GetCourseDetails)
	group.Get("/chapters", courseValidators.ChapterList(), controllers.GetChapters)
	group.Get("/chapters/:id", validators.ParamID("id", "Chapter"), controllers.GetChapterDetails)

	// Practice and progress
	group.Post("/chapters/:id/questions/:questionId/answer", middleware.JWTMiddleware,
		validators.ParamID("id", "Chapter"), validators.ParamID("questionId", "Question"),
		courseValidators.SubmitAnswer(), controllers.SubmitAnswer)
	group.Post("/chapters/:id/start", middleware.JWTMiddleware, validators.ParamID("id", "Chapter"), controllers.StartChapter)
	group.Post("/chapters/:id/complete", middleware.JWTMiddleware, validators.ParamID("id", "Chapter"), controllers.CompleteChapter)
	group.Get("/progress", middleware.JWTMiddleware, courseValidators.ProgressQuery(), controllers.GetProgress)
}
