package controllers

import (
	"careerhub/database"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

// publishedCourse loads a visible course or returns false
func publishedCourse(courseID string) (*courseModels.Course, bool) {
	var course courseModels.Course
	err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error
	return &course, err == nil
}

// publishedChapter loads a visible chapter whose course is also visible
func publishedChapter(chapterID string) (*courseModels.Chapter, bool) {
	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", chapterID, false, true).First(&chapter).Error; err != nil {
		return nil, false
	}
	if _, ok := publishedCourse(chapter.CourseID); !ok {
		return nil, false
	}
	return &chapter, true
}

// GetChapters lists the published chapters of ?courseId= in order
func GetChapters(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseId").(string)

	if _, ok := publishedCourse(courseID); !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var chapters []courseModels.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc").
		Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

// GetChapterDetails returns a chapter with its questions, answer keys hidden
func GetChapterDetails(c *fiber.Ctx) error {
	chapter, ok := publishedChapter(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var questions []courseModels.Question
	database.Database.Db.Where("chapter_id = ? AND is_deleted = ?", chapter.ID, false).Order("order_index asc, created_at asc").Find(&questions)

	public := make([]courseModels.PublicQuestion, len(questions))
	for i, q := range questions {
		public[i] = q.Public()
	}

	// previous/next let the reader page through the course
	var prev, next courseModels.Chapter
	database.Database.Db.Select("id", "title").
		Where("course_id = ? AND is_deleted = ? AND is_published = ? AND order_index < ?", chapter.CourseID, false, true, chapter.OrderIndex).
		Order("order_index desc").Limit(1).Find(&prev)
	database.Database.Db.Select("id", "title").
		Where("course_id = ? AND is_deleted = ? AND is_published = ? AND order_index > ?", chapter.CourseID, false, true, chapter.OrderIndex).
		Order("order_index asc").Limit(1).Find(&next)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", fiber.Map{
		"chapter":   chapter,
		"questions": public,
		"previous":  neighbour(prev),
		"next":      neighbour(next),
	})
}

func neighbour(ch courseModels.Chapter) interface{} {
	if ch.ID == "" {
		return nil
	}
	return fiber.Map{"id": ch.ID, "title": ch.Title}
}
