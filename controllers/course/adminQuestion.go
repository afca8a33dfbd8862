package controllers

import (
	"careerhub/database"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/validators"
	courseValidator "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminListQuestions lists a chapter's questions with answer keys
func AdminListQuestions(c *fiber.Ctx) error {
	var questions []courseModels.Question
	if err := database.Database.Db.Where("chapter_id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Order("order_index asc, created_at asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}

// AdminCreateQuestion adds a question to a chapter
func AdminCreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*courseValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	question := courseModels.Question{
		ChapterID:    chapter.ID,
		Type:         reqData.Type,
		Prompt:       reqData.Prompt,
		Options:      datatypes.NewJSONSlice(reqData.Options),
		CorrectIndex: reqData.CorrectIndex,
		Answer:       reqData.Answer,
		Explanation:  reqData.Explanation,
		OrderIndex:   reqData.OrderIndex,
	}
	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuestion merges the provided fields and re-checks the question shape
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := validators.GetID(c, "id")

	var question courseModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestionUpdate").(*courseValidator.QuestionUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Type != nil {
		question.Type = *reqData.Type
	}
	if reqData.Prompt != nil {
		question.Prompt = *reqData.Prompt
	}
	if reqData.Options != nil {
		question.Options = datatypes.NewJSONSlice(reqData.Options)
	}
	if reqData.CorrectIndex != nil {
		question.CorrectIndex = *reqData.CorrectIndex
	}
	if reqData.Answer != nil {
		question.Answer = *reqData.Answer
	}
	if reqData.Explanation != nil {
		question.Explanation = *reqData.Explanation
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}

	errs := map[string]string{}
	courseValidator.CheckQuestionShape(question.Type, question.Options, question.CorrectIndex, question.Answer, errs)
	if len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	result := database.Database.Db.Model(&courseModels.Question{}).
		Where("id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
