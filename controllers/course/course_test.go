package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"careerhub/models"
	"careerhub/models/course"
	"careerhub/routers"
	"careerhub/services"
	"careerhub/services/gdrive"
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
	services.Clients = services.Registry{}
	_, adminToken := testutil.CreateUser(t, models.RoleAdmin)
	_, userToken := testutil.CreateUser(t, models.RoleUser)
	return fixture{app: routers.NewApp(), adminToken: adminToken, userToken: userToken}
}

func (f fixture) createCourse(t *testing.T, body map[string]interface{}) course.Course {
	t.Helper()
	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/courses", f.adminToken, body)
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var c course.Course
	resp.Decode(t, &c)
	return c
}

func (f fixture) createChapter(t *testing.T, courseID, title string, order int) course.Chapter {
	t.Helper()
	resp := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/chapters", f.adminToken, map[string]interface{}{
		"courseId": courseID, "title": title, "content": "<p>Body</p><script>alert(1)</script>", "orderIndex": order, "isPublished": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	var ch course.Chapter
	resp.Decode(t, &ch)
	return ch
}

func TestCourseCatalogueOnlyShowsPublished(t *testing.T) {
	f := setup(t)

	draft := f.createCourse(t, map[string]interface{}{"title": "Rust for Gophers", "language": "Rust"})
	assert.Equal(t, "rust-for-gophers", draft.Slug)
	assert.Equal(t, "rust", draft.Language)
	assert.Equal(t, course.LevelBeginner, draft.Level)

	f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go", "level": "beginner", "isPublished": true})
	f.createCourse(t, map[string]interface{}{"title": "Advanced Go", "language": "go", "level": "ADVANCED", "isPublished": true})

	dup := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/courses", f.adminToken, map[string]interface{}{
		"title": "Go Basics", "language": "go",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	list := testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses?sort=-title", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var page struct {
		Courses    []course.Course  `json:"courses"`
		Pagination map[string]int64 `json:"pagination"`
	}
	list.Decode(t, &page)
	require.Len(t, page.Courses, 2)
	assert.Equal(t, "Go Basics", page.Courses[0].Title)
	assert.EqualValues(t, 2, page.Pagination["total"])

	filtered := testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses?level=advanced", "", nil)
	filtered.Decode(t, &page)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "Advanced Go", page.Courses[0].Title)

	badLevel := testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses?level=expert", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, badLevel.Code)

	hidden := testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses/"+draft.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, hidden.Code)

	publish := testutil.Do(t, f.app, http.MethodPut, "/api/admin/programming/courses/"+draft.ID, f.adminToken, map[string]interface{}{"isPublished": true})
	require.Equal(t, http.StatusOK, publish.Code)
	assert.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses/"+draft.ID, "", nil).Code)
}

func TestChaptersAndAnswers(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go", "isPublished": true})
	first := f.createChapter(t, c.ID, "Variables", 0)
	second := f.createChapter(t, c.ID, "Functions", 1)
	assert.NotContains(t, first.Content, "<script>")

	choice := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/questions", f.adminToken, map[string]interface{}{
		"chapterId": first.ID, "prompt": "Which keyword declares a variable?", "options": []string{"var", "let", "def"}, "correctIndex": 0,
		"explanation": "Go uses var.",
	})
	require.Equal(t, http.StatusCreated, choice.Code, string(choice.Raw))
	var choiceQ course.Question
	choice.Decode(t, &choiceQ)
	assert.Equal(t, course.QuestionChoice, choiceQ.Type)

	text := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/questions", f.adminToken, map[string]interface{}{
		"chapterId": first.ID, "type": "text", "prompt": "What runs a function concurrently?", "answer": "goroutine", "orderIndex": 1,
	})
	require.Equal(t, http.StatusCreated, text.Code, string(text.Raw))
	var textQ course.Question
	text.Decode(t, &textQ)

	badShape := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/questions", f.adminToken, map[string]interface{}{
		"chapterId": first.ID, "prompt": "Broken", "options": []string{"a", "b"}, "correctIndex": 5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, badShape.Code)

	chapters := testutil.Do(t, f.app, http.MethodGet, "/api/programming/chapters?courseId="+c.ID, "", nil)
	require.Equal(t, http.StatusOK, chapters.Code)
	var list []course.Chapter
	chapters.Decode(t, &list)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	assert.Equal(t, http.StatusUnprocessableEntity, testutil.Do(t, f.app, http.MethodGet, "/api/programming/chapters", "", nil).Code)

	details := testutil.Do(t, f.app, http.MethodGet, "/api/programming/chapters/"+first.ID, "", nil)
	require.Equal(t, http.StatusOK, details.Code)
	assert.NotContains(t, string(details.Raw), "correctIndex")
	assert.NotContains(t, string(details.Raw), "Go uses var.")
	var detail struct {
		Questions []course.PublicQuestion `json:"questions"`
		Previous  map[string]string       `json:"previous"`
		Next      map[string]string       `json:"next"`
	}
	details.Decode(t, &detail)
	assert.Len(t, detail.Questions, 2)
	assert.Nil(t, detail.Previous)
	assert.Equal(t, second.ID, detail.Next["id"])

	answerURL := "/api/programming/chapters/" + first.ID + "/questions/"
	assert.Equal(t, http.StatusUnauthorized, testutil.Do(t, f.app, http.MethodPost, answerURL+choiceQ.ID+"/answer", "", map[string]int{"selectedIndex": 0}).Code)

	right := testutil.Do(t, f.app, http.MethodPost, answerURL+choiceQ.ID+"/answer", f.userToken, map[string]int{"selectedIndex": 0})
	require.Equal(t, http.StatusOK, right.Code, string(right.Raw))
	var result struct {
		IsCorrect   bool    `json:"isCorrect"`
		Explanation string  `json:"explanation"`
		Similarity  float64 `json:"similarity"`
	}
	right.Decode(t, &result)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, "Go uses var.", result.Explanation)

	outOfRange := testutil.Do(t, f.app, http.MethodPost, answerURL+choiceQ.ID+"/answer", f.userToken, map[string]int{"selectedIndex": 9})
	assert.Equal(t, http.StatusUnprocessableEntity, outOfRange.Code)

	typed := testutil.Do(t, f.app, http.MethodPost, answerURL+textQ.ID+"/answer", f.userToken, map[string]string{"answer": " Goroutine "})
	require.Equal(t, http.StatusOK, typed.Code)
	typed.Decode(t, &result)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, 1.0, result.Similarity)

	typo := testutil.Do(t, f.app, http.MethodPost, answerURL+textQ.ID+"/answer", f.userToken, map[string]string{"answer": "gorotine"})
	typo.Decode(t, &result)
	assert.False(t, result.IsCorrect)
	assert.InDelta(t, 8.0/9.0, result.Similarity, 0.0001)

	wrongChapter := testutil.Do(t, f.app, http.MethodPost, "/api/programming/chapters/"+second.ID+"/questions/"+choiceQ.ID+"/answer", f.userToken, map[string]int{"selectedIndex": 0})
	assert.Equal(t, http.StatusNotFound, wrongChapter.Code)
}

func TestCompleteChapterAndProgress(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go", "isPublished": true})
	first := f.createChapter(t, c.ID, "Variables", 0)
	f.createChapter(t, c.ID, "Functions", 1)

	for i := 0; i < 2; i++ {
		resp := testutil.Do(t, f.app, http.MethodPost, "/api/programming/chapters/"+first.ID+"/complete", f.userToken, nil)
		require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
		var p course.ChapterProgress
		resp.Decode(t, &p)
		assert.Equal(t, course.ProgressCompleted, p.Status)
	}

	resp := testutil.Do(t, f.app, http.MethodGet, "/api/programming/progress?courseId="+c.ID, f.userToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var progress []struct {
		CourseID          string   `json:"courseId"`
		TotalChapters     int64    `json:"totalChapters"`
		CompletedChapters int64    `json:"completedChapters"`
		CompletedIDs      []string `json:"completedIds"`
		Progress          float64  `json:"progress"`
	}
	resp.Decode(t, &progress)
	require.Len(t, progress, 1)
	assert.EqualValues(t, 2, progress[0].TotalChapters)
	assert.EqualValues(t, 1, progress[0].CompletedChapters)
	assert.Equal(t, []string{first.ID}, progress[0].CompletedIDs)
	assert.InDelta(t, 50.0, progress[0].Progress, 0.001)

	// Deleting a chapter removes it from both sides of the ratio
	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/programming/chapters/"+first.ID, f.adminToken, nil).Code)
	resp = testutil.Do(t, f.app, http.MethodGet, "/api/programming/progress?courseId="+c.ID, f.userToken, nil)
	resp.Decode(t, &progress)
	assert.EqualValues(t, 1, progress[0].TotalChapters)
	assert.EqualValues(t, 0, progress[0].CompletedChapters)
	assert.Empty(t, progress[0].CompletedIDs)
}

func TestStartChapterNeverDowngrades(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go", "isPublished": true})
	ch := f.createChapter(t, c.ID, "Variables", 0)
	base := "/api/programming/chapters/" + ch.ID

	var p course.ChapterProgress
	resp := testutil.Do(t, f.app, http.MethodPost, base+"/start", f.userToken, nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	resp.Decode(t, &p)
	assert.Equal(t, course.ProgressInProgress, p.Status)
	assert.Nil(t, p.CompletedAt)

	resp = testutil.Do(t, f.app, http.MethodPost, base+"/complete", f.userToken, nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	resp.Decode(t, &p)
	assert.Equal(t, course.ProgressCompleted, p.Status)
	require.NotNil(t, p.CompletedAt)
	firstCompletion := *p.CompletedAt

	resp = testutil.Do(t, f.app, http.MethodPost, base+"/start", f.userToken, nil)
	resp.Decode(t, &p)
	assert.Equal(t, course.ProgressCompleted, p.Status)

	resp = testutil.Do(t, f.app, http.MethodPost, base+"/complete", f.userToken, nil)
	resp.Decode(t, &p)
	require.NotNil(t, p.CompletedAt)
	assert.True(t, firstCompletion.Equal(*p.CompletedAt))
}

func TestSlugFallbackForNonASCIITitles(t *testing.T) {
	f := setup(t)

	first := f.createCourse(t, map[string]interface{}{"title": "プログラミング入門", "language": "go"})
	second := f.createCourse(t, map[string]interface{}{"title": "データベース基礎", "language": "sql"})
	assert.Equal(t, "course-"+first.ID[:8], first.Slug)
	assert.Equal(t, "course-"+second.ID[:8], second.Slug)

	mixed := f.createCourse(t, map[string]interface{}{"title": "Go 入門", "language": "go"})
	assert.Equal(t, "go", mixed.Slug)

	resp := testutil.Do(t, f.app, http.MethodPut, "/api/admin/programming/courses/"+first.ID, f.adminToken, map[string]interface{}{"slug": "入門"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestAdminCourseSearchIgnoresCase(t *testing.T) {
	f := setup(t)

	f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go"})
	f.createCourse(t, map[string]interface{}{"title": "Python Basics", "language": "python"})

	resp := testutil.Do(t, f.app, http.MethodGet, "/api/admin/programming/courses?q=%20GO%20", f.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var page struct {
		Courses []course.Course `json:"courses"`
	}
	resp.Decode(t, &page)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "Go Basics", page.Courses[0].Title)
}

func TestAdminQuestionUpdateRechecksShape(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go"})
	ch := f.createChapter(t, c.ID, "Variables", 0)

	created := testutil.Do(t, f.app, http.MethodPost, "/api/admin/programming/questions", f.adminToken, map[string]interface{}{
		"chapterId": ch.ID, "prompt": "Pick one", "options": []string{"a", "b"}, "correctIndex": 1,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var q course.Question
	created.Decode(t, &q)

	bad := testutil.Do(t, f.app, http.MethodPut, "/api/admin/programming/questions/"+q.ID, f.adminToken, map[string]interface{}{"options": []string{"only", "two"}, "correctIndex": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, bad.Code)

	ok := testutil.Do(t, f.app, http.MethodPut, "/api/admin/programming/questions/"+q.ID, f.adminToken, map[string]interface{}{"type": "TEXT", "answer": "b"})
	require.Equal(t, http.StatusOK, ok.Code, string(ok.Raw))
	ok.Decode(t, &q)
	assert.Equal(t, course.QuestionText, q.Type)

	list := testutil.Do(t, f.app, http.MethodGet, "/api/admin/programming/chapters/"+ch.ID+"/questions", f.adminToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, string(list.Raw), `"answer":"b"`)

	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/programming/questions/"+q.ID, f.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/programming/questions/"+q.ID, f.adminToken, nil).Code)
}

func TestImportChapterFromGoogleDoc(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go"})
	ch := f.createChapter(t, c.ID, "Variables", 0)
	url := "/api/admin/programming/chapters/" + ch.ID + "/import-doc"

	// Without an API key the Drive client reports it is not configured
	resp := testutil.Do(t, f.app, http.MethodPost, url, f.adminToken, map[string]string{"documentId": "doc-1"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/doc-1/export" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "text/plain", r.URL.Query().Get("mimeType"))
		_, _ = w.Write([]byte("Variables hold values.\n\nUse var or :=."))
	}))
	defer srv.Close()
	services.Clients.Drive = gdrive.New(srv.URL, "key")

	resp = testutil.Do(t, f.app, http.MethodPost, url, f.adminToken, map[string]string{"documentId": "doc-1"})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Raw))
	var updated course.Chapter
	resp.Decode(t, &updated)
	assert.Equal(t, "doc-1", updated.SourceDocID)
	assert.Equal(t, "<p>Variables hold values.</p><p>Use var or :=.</p>", updated.Content)

	missing := testutil.Do(t, f.app, http.MethodPost, url, f.adminToken, map[string]string{"documentId": "nope"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteCourseFreesSlug(t *testing.T) {
	f := setup(t)

	c := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go", "isPublished": true})
	require.Equal(t, http.StatusOK, testutil.Do(t, f.app, http.MethodDelete, "/api/admin/programming/courses/"+c.ID, f.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, f.app, http.MethodGet, "/api/programming/courses/"+c.ID, "", nil).Code)

	again := f.createCourse(t, map[string]interface{}{"title": "Go Basics", "language": "go"})
	assert.Equal(t, "go-basics", again.Slug)
}
