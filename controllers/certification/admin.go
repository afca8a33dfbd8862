package controllers

import (
	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	certModels "careerhub/models/certification"
	"careerhub/validators"
	certificationValidator "careerhub/validators/certification"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AdminListCertifications lists every certification including drafts
func AdminListCertifications(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&certModels.Certification{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var certs []certModels.Certification
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certifications fetched successfully!", fiber.Map{
		"certifications": certs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

func AdminCreateCertification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCertification").(*certificationValidator.CertificationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cert := certModels.Certification{
		Name:         reqData.Name,
		Code:         reqData.Code,
		Vendor:       reqData.Vendor,
		Description:  reqData.Description,
		Level:        reqData.Level,
		PassingScore: 70,
		IsPublished:  reqData.IsPublished,
	}
	if reqData.PassingScore != nil {
		cert.PassingScore = *reqData.PassingScore
	}

	if err := database.Database.Db.Create(&cert).Error; err != nil {
		if database.IsDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A certification with this code already exists!", nil)
		}
		logger.Log.Error("create certification failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certification created successfully!", cert)
}

func AdminUpdateCertification(c *fiber.Ctx) error {
	certID := validators.GetID(c, "id")

	var cert certModels.Certification
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertificationUpdate").(*certificationValidator.CertificationUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Code != nil {
		updates["code"] = *reqData.Code
	}
	if reqData.Vendor != nil {
		updates["vendor"] = *reqData.Vendor
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.PassingScore != nil {
		updates["passing_score"] = *reqData.PassingScore
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&cert).Updates(updates).Error; err != nil {
			if database.IsDuplicate(err) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "A certification with this code already exists!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certification!", nil)
		}
	}

	database.Database.Db.First(&cert, "id = ?", certID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification updated successfully!", cert)
}

func AdminDeleteCertification(c *fiber.Ctx) error {
	certID := validators.GetID(c, "id")

	var cert certModels.Certification
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	if err := database.Database.Db.Model(&cert).Updates(map[string]interface{}{
		"is_deleted": true,
		"code":       cert.Code + "-DELETED-" + cert.ID[:8],
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete certification!", nil)
	}
	database.Database.Db.Model(&certModels.Question{}).Where("certification_id = ?", certID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification deleted successfully!", nil)
}

// AdminListQuestions returns a certification's questions with answer keys
func AdminListQuestions(c *fiber.Ctx) error {
	var questions []certModels.Question
	if err := database.Database.Db.
		Where("certification_id = ? AND is_deleted = ?", validators.GetID(c, "id"), false).
		Order("created_at asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}

func AdminCreateQuestion(c *fiber.Ctx) error {
	certID := validators.GetID(c, "id")

	var cert certModels.Certification
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertQuestion").(*certificationValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := certModels.Question{
		CertificationID: cert.ID,
		Category:        reqData.Category,
		Prompt:          reqData.Prompt,
		Options:         datatypes.NewJSONSlice(reqData.Options),
		CorrectIndex:    reqData.CorrectIndex,
		Explanation:     reqData.Explanation,
	}
	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := validators.GetID(c, "id")

	var question certModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertQuestionUpdate").(*certificationValidator.QuestionUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Category != nil {
		question.Category = *reqData.Category
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
	if reqData.Explanation != nil {
		question.Explanation = *reqData.Explanation
	}

	if question.CorrectIndex >= len(question.Options) {
		return middleware.ValidationErrorResponse(c, map[string]string{"correctIndex": "correctIndex must point at one of the options!"})
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

func AdminDeleteQuestion(c *fiber.Ctx) error {
	result := database.Database.Db.Model(&certModels.Question{}).
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
