package controllers_test

import (
	"net/http"
	"testing"

	"careerhub/models"
	certModels "careerhub/models/certification"
	"careerhub/routers"
	"careerhub/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app        *fiber.App
	adminToken string
	userToken  string
}

func setup(t *testing.T) fixture {
	testutil.SetupDB(t)
	_, adminToken := testutil.CreateUser(t, models.RoleAdmin)
	_, userToken := testutil.CreateUser(t, models.RoleUser)
	return fixture{app: routers.NewApp(), adminToken: adminToken, userToken: userToken}
}

func (f fixture) createCert(t *testing.T, body map[string]interface{}) certModels.Certification {
	t.Helper()
	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/certifications", f.adminToken, body)
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var cert certModels.Certification
	resp.Decode(t, &cert)
	return cert
}

func (f fixture) createQuestion(t *testing.T, certID, category string, correct int) certModels.Question {
	t.Helper()
	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/certifications/"+certID+"/questions", f.adminToken, map[string]interface{}{
		"category": category, "prompt": "Pick the right option", "options": []string{"A", "B", "C"}, "correctIndex": correct,
		"explanation": "Because.",
	})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var q certModels.Question
	resp.Decode(t, &q)
	return q
}

func TestCertificationListing(t *testing.T) {
	f := setup(t)

	az := f.createCert(t, map[string]interface{}{"name": "Azure Fundamentals", "code": "az-900", "vendor": "Microsoft", "isPublished": true})
	assert.Equal(t, "AZ-900", az.Code)
	assert.Equal(t, 70, az.PassingScore)

	f.createCert(t, map[string]interface{}{"name": "Solutions Architect", "code": "SAA-C03", "vendor": "AWS", "passingScore": 72, "isPublished": true})
	f.createCert(t, map[string]interface{}{"name": "Draft", "code": "DRAFT-1", "vendor": "AWS"})

	dup := testutil.Do(t, f.app, http.MethodPost, "/api/admin/certifications", f.adminToken, map[string]interface{}{
		"name": "Again", "code": "AZ-900", "vendor": "Microsoft",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	resp := testutil.Do(t, f.app, http.MethodGet, "/api/certifications", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var page struct {
		Certifications []certModels.Certification `json:"certifications"`
	}
	resp.Decode(t, &page)
	require.Len(t, page.Certifications, 2)
	assert.Equal(t, "SAA-C03", page.Certifications[0].Code)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/certifications?vendor=microsoft", "", nil)
	resp.Decode(t, &page)
	require.Len(t, page.Certifications, 1)
	assert.Equal(t, az.ID, page.Certifications[0].ID)

	f.createQuestion(t, az.ID, "Cloud Concepts", 0)
	f.createQuestion(t, az.ID, "Pricing", 1)
	f.createQuestion(t, az.ID, "Pricing", 2)

	details := testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+az.ID, "", nil)
	require.Equal(t, http.StatusOK, details.Code)
	var detail struct {
		Categories    []string `json:"categories"`
		QuestionCount int64    `json:"questionCount"`
	}
	details.Decode(t, &detail)
	assert.Equal(t, []string{"Cloud Concepts", "Pricing"}, detail.Categories)
	assert.EqualValues(t, 3, detail.QuestionCount)

	assert.Equal(t, http.StatusBadRequest, testutil.Do(t, f.app, http.MethodGet, "/api/certifications/not-an-id", "", nil).Code)
}

func TestCertificationQuestions(t *testing.T) {
	f := setup(t)

	cert := f.createCert(t, map[string]interface{}{"name": "Azure Fundamentals", "code": "AZ-900", "vendor": "Microsoft", "isPublished": true})
	for i := 0; i < 5; i++ {
		category := "Pricing"
		if i%2 == 0 {
			category = "Security"
		}
		f.createQuestion(t, cert.ID, category, i%3)
	}

	resp := testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/questions?limit=2&shuffle=true", "", nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	assert.NotContains(t, string(resp.Raw), "correctIndex")
	assert.NotContains(t, string(resp.Raw), "Because.")
	var questions []certModels.PublicQuestion
	resp.Decode(t, &questions)
	assert.Len(t, questions, 2)

	resp = testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/questions?category=Security", "", nil)
	resp.Decode(t, &questions)
	assert.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, "Security", q.Category)
	}

	assert.Equal(t, http.StatusUnprocessableEntity, testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/questions?limit=0", "", nil).Code)
}

func TestCertificationProgressUsesLatestAnswer(t *testing.T) {
	f := setup(t)

	cert := f.createCert(t, map[string]interface{}{"name": "Azure Fundamentals", "code": "AZ-900", "vendor": "Microsoft", "passingScore": 60, "isPublished": true})
	q1 := f.createQuestion(t, cert.ID, "Pricing", 0)
	q2 := f.createQuestion(t, cert.ID, "Pricing", 1)
	f.createQuestion(t, cert.ID, "Pricing", 2)

	answer := func(q certModels.Question, idx int) *testutil.Response {
		return testutil.Do(t, f.app, http.MethodPost, "/api/certifications/"+cert.ID+"/questions/"+q.ID+"/answer", f.userToken, map[string]int{"selectedIndex": idx})
	}

	resp := answer(q1, 1)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	var result struct {
		IsCorrect    bool   `json:"isCorrect"`
		CorrectIndex int    `json:"correctIndex"`
		Explanation  string `json:"explanation"`
	}
	resp.Decode(t, &result)
	assert.False(t, result.IsCorrect)
	assert.Equal(t, 0, result.CorrectIndex)
	assert.Equal(t, "Because.", result.Explanation)

	require.Equal(t, http.StatusOK, answer(q1, 0).Code)
	require.Equal(t, http.StatusOK, answer(q2, 0).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, answer(q2, 7).Code)

	missing := testutil.Do(t, f.app, http.MethodPost, "/api/certifications/"+cert.ID+"/questions/"+q1.ID+"/answer", f.userToken, map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, missing.Code)

	var progress struct {
		TotalQuestions int64   `json:"totalQuestions"`
		Answered       int     `json:"answered"`
		Correct        int     `json:"correct"`
		Accuracy       float64 `json:"accuracy"`
		PassingScore   int     `json:"passingScore"`
		Passed         bool    `json:"passed"`
	}
	resp = testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/progress", f.userToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp.Decode(t, &progress)
	assert.EqualValues(t, 3, progress.TotalQuestions)
	assert.Equal(t, 2, progress.Answered)
	assert.Equal(t, 1, progress.Correct)
	assert.InDelta(t, 50.0, progress.Accuracy, 0.001)
	assert.False(t, progress.Passed)

	require.Equal(t, http.StatusOK, answer(q2, 1).Code)
	resp = testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/progress", f.userToken, nil)
	resp.Decode(t, &progress)
	assert.Equal(t, 2, progress.Correct)
	assert.True(t, progress.Passed)

	// A deleted question no longer counts towards progress
	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/certifications/questions/"+q2.ID, f.adminToken, nil).Code)
	resp = testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID+"/progress", f.userToken, nil)
	resp.Decode(t, &progress)
	assert.EqualValues(t, 2, progress.TotalQuestions)
	assert.Equal(t, 1, progress.Answered)
}

func TestAdminCertificationLifecycle(t *testing.T) {
	f := setup(t)

	cert := f.createCert(t, map[string]interface{}{"name": "Azure Fundamentals", "code": "AZ-900", "vendor": "Microsoft"})
	q := f.createQuestion(t, cert.ID, "Pricing", 0)

	bad := testutil.Do(t, f.app, http.MethodPost, "/api/admin/certifications/"+cert.ID+"/questions", f.adminToken, map[string]interface{}{
		"prompt": "One option only", "options": []string{"A"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, bad.Code)

	outOfRange := testutil.Do(t, f.app, http.MethodPut, "/api/admin/certifications/questions/"+q.ID, f.adminToken, map[string]interface{}{"correctIndex": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, outOfRange.Code)

	updated := testutil.Do(t, f.app, http.MethodPut, "/api/admin/certifications/questions/"+q.ID, f.adminToken, map[string]interface{}{"correctIndex": 2, "category": "Support"})
	require.Equal(t, http.StatusOK, updated.Code, string(updated.Raw))
	updated.Decode(t, &q)
	assert.Equal(t, 2, q.CorrectIndex)
	assert.Equal(t, "Support", q.Category)

	list := testutil.Do(t, f.app, http.MethodGet, "/api/admin/certifications/"+cert.ID+"/questions", f.adminToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, string(list.Raw), `"correctIndex":2`)

	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID, "", nil).Code)
	publish := testutil.Do(t, f.app, http.MethodPut, "/api/admin/certifications/"+cert.ID, f.adminToken, map[string]interface{}{"isPublished": true})
	require.Equal(t, http.StatusOK, publish.Code)
	assert.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID, "", nil).Code)

	assert.Equal(t, http.StatusForbidden, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/certifications/"+cert.ID, f.userToken, nil).Code)
	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/certifications/"+cert.ID, f.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodGet, "/api/certifications/"+cert.ID, "", nil).Code)

	again := f.createCert(t, map[string]interface{}{"name": "Azure Fundamentals", "code": "AZ-900", "vendor": "Microsoft"})
	assert.NotEqual(t, cert.ID, again.ID)
}
