package controllers

import (
	"careerhub/database"
	"careerhub/middleware"
	courseModels "careerhub/models/course"
	"careerhub/utils"
	"careerhub/validators"
	courseValidator "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// TextMatchThreshold is the minimum similarity for a TEXT answer to count as correct
const TextMatchThreshold = 0.9

// SubmitAnswer checks a learner's answer to a chapter question
func SubmitAnswer(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUserID(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapter, ok := publishedChapter(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var question courseModels.Question
	if err := database.Database.Db.Where("id = ? AND chapter_id = ? AND is_deleted = ?", validators.GetID(c, "questionId"), chapter.ID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*courseValidator.AnswerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if question.Type == courseModels.QuestionText {
		similarity, _ := utils.Similarity(question.Answer, reqData.Answer)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer checked!", fiber.Map{
			"isCorrect":   similarity >= TextMatchThreshold,
			"similarity":  similarity,
			"answer":      question.Answer,
			"explanation": question.Explanation,
		})
	}

	if reqData.SelectedIndex == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"selectedIndex": "selectedIndex is required!"})
	}
	if *reqData.SelectedIndex >= len(question.Options) {
		return middleware.ValidationErrorResponse(c, map[string]string{"selectedIndex": "selectedIndex is out of range!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer checked!", fiber.Map{
		"isCorrect":    *reqData.SelectedIndex == question.CorrectIndex,
		"correctIndex": question.CorrectIndex,
		"explanation":  question.Explanation,
	})
}
