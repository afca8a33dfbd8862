package controllers

import (
	"html"
	"strings"

	"careerhub/database"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/services"
	"careerhub/utils"
	"careerhub/validators"
	courseValidator "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminListChapters lists every chapter of a course, drafts included
func AdminListChapters(c *fiber.Ctx) error {
	courseID := validators.GetID(c, "id")

	var chapters []courseModels.Chapter
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

// AdminCreateChapter adds a chapter to an existing course
func AdminCreateChapter(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChapter").(*courseValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	chapter := courseModels.Chapter{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Content:     utils.SanitizeHTML(reqData.Content),
		OrderIndex:  reqData.OrderIndex,
		IsPublished: reqData.IsPublished,
	}
	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter applies the provided fields to a chapter
func AdminUpdateChapter(c *fiber.Ctx) error {
	chapterID := validators.GetID(c, "id")

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*courseValidator.ChapterUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Content != nil {
		updates["content"] = utils.SanitizeHTML(*reqData.Content)
	}
	if reqData.OrderIndex != nil {
		updates["order_index"] = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&chapter).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
		}
	}

	database.Database.Db.First(&chapter, "id = ?", chapterID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter soft deletes a chapter and its questions
func AdminDeleteChapter(c *fiber.Ctx) error {
	chapterID := validators.GetID(c, "id")

	result := database.Database.Db.Model(&courseModels.Chapter{}).
		Where("id = ? AND is_deleted = ?", chapterID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}
	database.Database.Db.Model(&courseModels.Question{}).Where("chapter_id = ?", chapterID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminImportChapterDoc replaces a chapter's content with a Google Doc export
func AdminImportChapterDoc(c *fiber.Ctx) error {
	chapterID := validators.GetID(c, "id")

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedImportDoc").(*courseValidator.ImportDocRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var (
		content string
		err     error
	)
	if reqData.Format == "html" {
		content, err = services.Clients.Drive.ExportHTML(c.UserContext(), reqData.DocumentID)
	} else {
		content, err = services.Clients.Drive.ExportText(c.UserContext(), reqData.DocumentID)
		content = textToHTML(content)
	}
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Google Docs", err)
	}

	if err := database.Database.Db.Model(&chapter).Updates(map[string]interface{}{
		"content":       utils.SanitizeHTML(content),
		"source_doc_id": reqData.DocumentID,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	database.Database.Db.First(&chapter, "id = ?", chapterID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter imported successfully!", chapter)
}

// textToHTML turns blank-line separated plain text into paragraphs
func textToHTML(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	var b strings.Builder
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
