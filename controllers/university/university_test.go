package controllers_test

import (
	"net/http"
	"testing"

	"careerhub/models"
	"careerhub/models/university"
	"careerhub/routers"
	"careerhub/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type universityPage struct {
	Universities []university.University `json:"universities"`
	Pagination   map[string]int64        `json:"pagination"`
}

func names(list []university.University) []string {
	out := make([]string, len(list))
	for i, u := range list {
		out[i] = u.Name
	}
	return out
}

func TestUniversityListing(t *testing.T) {
	db := testutil.SetupDB(t)
	_, adminToken := testutil.CreateUser(t, models.RoleAdmin)
	app := routers.NewApp()

	seed := []map[string]interface{}{
		{"name": "University of Tokyo", "country": "Japan", "city": "Tokyo", "ranking": 28, "tuitionFee": "4000"},
		{"name": "Kyoto University", "country": "Japan", "city": "Kyoto", "ranking": 46, "tuitionFee": 3900.5, "currency": "jpy"},
		{"name": "MIT", "country": "USA", "city": "Cambridge", "ranking": 1, "tuitionFee": "57000"},
		{"name": "Hidden College", "country": "Japan", "isPublished": false},
	}
	for _, body := range seed {
		resp := testutil.Do(t, app, http.MethodPost, "/api/admin/universities", adminToken, body)
		require.Equal(t, http.StatusCreated, resp.Code, string(resp.Raw))
	}

	var hidden university.University
	require.NoError(t, db.First(&hidden, "name = ?", "Hidden College").Error)
	assert.False(t, hidden.IsPublished)

	var page universityPage
	resp := testutil.Do(t, app, http.MethodGet, "/api/universities", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp.Decode(t, &page)
	assert.Equal(t, []string{"Kyoto University", "MIT", "University of Tokyo"}, names(page.Universities))
	assert.EqualValues(t, 3, page.Pagination["total"])

	resp = testutil.Do(t, app, http.MethodGet, "/api/universities?country=japan&sort=ranking", "", nil)
	resp.Decode(t, &page)
	assert.Equal(t, []string{"University of Tokyo", "Kyoto University"}, names(page.Universities))

	resp = testutil.Do(t, app, http.MethodGet, "/api/universities?sort=-tuitionFee&limit=1", "", nil)
	resp.Decode(t, &page)
	require.Len(t, page.Universities, 1)
	assert.Equal(t, "MIT", page.Universities[0].Name)
	assert.True(t, decimal.NewFromInt(57000).Equal(page.Universities[0].TuitionFee))

	resp = testutil.Do(t, app, http.MethodGet, "/api/universities?q=kyoto", "", nil)
	resp.Decode(t, &page)
	require.Len(t, page.Universities, 1)
	assert.Equal(t, "JPY", page.Universities[0].Currency)
	assert.Equal(t, "USD", func() string {
		r := testutil.Do(t, app, http.MethodGet, "/api/universities?q=cambridge", "", nil)
		var p universityPage
		r.Decode(t, &p)
		require.Len(t, p.Universities, 1)
		return p.Universities[0].Currency
	}())

	admin := testutil.Do(t, app, http.MethodGet, "/api/admin/universities", adminToken, nil)
	admin.Decode(t, &page)
	assert.Len(t, page.Universities, 4)
}

func TestUniversityAdminValidationAndDelete(t *testing.T) {
	testutil.SetupDB(t)
	_, adminToken := testutil.CreateUser(t, models.RoleAdmin)
	_, userToken := testutil.CreateUser(t, models.RoleUser)
	app := routers.NewApp()

	negative := testutil.Do(t, app, http.MethodPost, "/api/admin/universities", adminToken, map[string]interface{}{
		"name": "Bad Fees", "country": "UK", "tuitionFee": -1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, negative.Code)

	forbidden := testutil.Do(t, app, http.MethodPost, "/api/admin/universities", userToken, map[string]interface{}{"name": "Oxford", "country": "UK"})
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	created := testutil.Do(t, app, http.MethodPost, "/api/admin/universities", adminToken, map[string]interface{}{
		"name": "Oxford", "country": "UK", "description": "<p>Old</p><script>x()</script>",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var uni university.University
	created.Decode(t, &uni)
	assert.NotContains(t, uni.Description, "script")

	updated := testutil.Do(t, app, http.MethodPut, "/api/admin/universities/"+uni.ID, adminToken, map[string]interface{}{"ranking": 3, "tuitionFee": "30000.25"})
	require.Equal(t, http.StatusOK, updated.Code, string(updated.Raw))
	updated.Decode(t, &uni)
	assert.Equal(t, 3, uni.Ranking)
	assert.Equal(t, "30000.25", uni.TuitionFee.String())

	details := testutil.Do(t, app, http.MethodGet, "/api/universities/"+uni.ID, "", nil)
	require.Equal(t, http.StatusOK, details.Code)

	require.Equal(t, http.StatusOK, testutil.Do(t, app, http.MethodDelete, "/api/admin/universities/"+uni.ID, adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, app, http.MethodGet, "/api/universities/"+uni.ID, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, app, http.MethodPut, "/api/admin/universities/"+uni.ID, adminToken, map[string]interface{}{"ranking": 1}).Code)
}
