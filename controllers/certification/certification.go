package controllers

import (
	"math/rand"
	"strings"

	"careerhub/database"
	"careerhub/middleware"
	certModels "careerhub/models/certification"
	"careerhub/validators"
	certificationValidator "careerhub/validators/certification"

	"github.com/gofiber/fiber/v2"
)

func publishedCertification(id string) (certModels.Certification, bool) {
	var cert certModels.Certification
	err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", id, true, false).
		First(&cert).Error
	return cert, err == nil
}

// GetCertifications lists published certifications, optionally filtered by vendor
func GetCertifications(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&certModels.Certification{}).
		Where("is_published = ? AND is_deleted = ?", true, false)
	if vendor := strings.TrimSpace(c.Query("vendor")); vendor != "" {
		db = db.Where("LOWER(vendor) = ?", strings.ToLower(vendor))
	}

	var total int64
	db.Count(&total)

	var certs []certModels.Certification
	if err := db.Order("vendor asc, code asc").Offset(page.Offset).Limit(page.Limit).Find(&certs).Error; err != nil {
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

// GetCertificationDetails returns one certification with its question categories
func GetCertificationDetails(c *fiber.Ctx) error {
	cert, ok := publishedCertification(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	var categories []string
	database.Database.Db.Model(&certModels.Question{}).
		Where("certification_id = ? AND is_deleted = ? AND category <> ''", cert.ID, false).
		Distinct().Order("category asc").Pluck("category", &categories)

	var questionCount int64
	database.Database.Db.Model(&certModels.Question{}).
		Where("certification_id = ? AND is_deleted = ?", cert.ID, false).
		Count(&questionCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification fetched successfully!", fiber.Map{
		"certification": cert,
		"categories":    categories,
		"questionCount": questionCount,
	})
}

// GetQuestions returns practice questions without their answer keys
func GetQuestions(c *fiber.Ctx) error {
	cert, ok := publishedCertification(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	query, ok := c.Locals("questionQuery").(*certificationValidator.QuestionQuery)
	if !ok {
		query = &certificationValidator.QuestionQuery{}
	}

	db := database.Database.Db.Where("certification_id = ? AND is_deleted = ?", cert.ID, false)
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}

	var questions []certModels.Question
	if err := db.Order("created_at asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	if query.Shuffle {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	if query.Limit > 0 && len(questions) > query.Limit {
		questions = questions[:query.Limit]
	}

	public := make([]certModels.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.Public())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", public)
}

// SubmitAnswer records an attempt and reveals the correct option
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cert, ok := publishedCertification(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	var question certModels.Question
	if err := database.Database.Db.
		Where("id = ? AND certification_id = ? AND is_deleted = ?", validators.GetID(c, "questionId"), cert.ID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertAnswer").(*certificationValidator.AnswerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if *reqData.SelectedIndex >= len(question.Options) {
		return middleware.ValidationErrorResponse(c, map[string]string{"selectedIndex": "selectedIndex is out of range!"})
	}

	answer := certModels.Answer{
		UserID:          userID,
		CertificationID: cert.ID,
		QuestionID:      question.ID,
		SelectedIndex:   *reqData.SelectedIndex,
		IsCorrect:       *reqData.SelectedIndex == question.CorrectIndex,
	}
	if err := database.Database.Db.Create(&answer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", fiber.Map{
		"isCorrect":    answer.IsCorrect,
		"correctIndex": question.CorrectIndex,
		"explanation":  question.Explanation,
	})
}

// GetProgress scores the learner's latest answer to each question
func GetProgress(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cert, ok := publishedCertification(validators.GetID(c, "id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	var totalQuestions int64
	database.Database.Db.Model(&certModels.Question{}).
		Where("certification_id = ? AND is_deleted = ?", cert.ID, false).
		Count(&totalQuestions)

	var answers []certModels.Answer
	if err := database.Database.Db.
		Joins("JOIN certification_questions q ON q.id = certification_answers.question_id AND q.is_deleted = ?", false).
		Where("certification_answers.user_id = ? AND certification_answers.certification_id = ?", userID, cert.ID).
		Order("certification_answers.created_at asc").
		Find(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	latest := make(map[string]bool, len(answers))
	for _, a := range answers {
		latest[a.QuestionID] = a.IsCorrect
	}

	correct := 0
	for _, isCorrect := range latest {
		if isCorrect {
			correct++
		}
	}

	answered := len(latest)
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(correct) * 100 / float64(answered)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"certificationId": cert.ID,
		"totalQuestions":  totalQuestions,
		"answered":        answered,
		"correct":         correct,
		"accuracy":        accuracy,
		"passingScore":    cert.PassingScore,
		"passed":          answered > 0 && accuracy >= float64(cert.PassingScore),
	})
}
