// file: controllers/progress_controller_test.go
package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/testutil"
)

func seedProgressUpdate(t *testing.T, db *gorm.DB, authorFid uint64) models.ProgressUpdate {
	t.Helper()
	update := models.ProgressUpdate{
		TeamName:       "Team Rocket",
		KeyFeatures:    "shipped the thing",
		UserEngagement: "ten users",
		Challenges:     "time",
		NextSteps:      "ship more",
		AuthorFid:      authorFid,
	}
	require.NoError(t, db.Create(&update).Error)
	return update
}

func TestCreateProgressUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)

	w := postJSON(t, r, "/progress-updates", testutil.BearerToken(t, testutil.BuilderFid), map[string]interface{}{
		"key_features":    "launched onboarding",
		"user_engagement": "32 weekly actives",
		"challenges":      "wallet connection flakiness",
		"next_steps":      "notifications",
		"demo_link":       "https://example.com/demo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.ProgressUpdate
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Team Rocket", stored.TeamName, "team name comes from the injected map, not the payload")
	assert.Equal(t, testutil.BuilderFid, stored.AuthorFid)
}

func TestCreateProgressUpdateRejectsNonReporter(t *testing.T) {
	testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)

	w := postJSON(t, r, "/progress-updates", testutil.BearerToken(t, testutil.OutsiderFid), map[string]interface{}{
		"key_features":    "x",
		"user_engagement": "x",
		"challenges":      "x",
		"next_steps":      "x",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateProgressUpdateMissingFields(t *testing.T) {
	testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)

	w := postJSON(t, r, "/progress-updates", testutil.BearerToken(t, testutil.BuilderFid), map[string]interface{}{
		"key_features": "only this",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProgressOwnershipLadder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)
	update := seedProgressUpdate(t, db, testutil.BuilderFid)

	body := map[string]interface{}{"next_steps": "pivot"}

	// 401: no identity.
	w := postJSON(t, r, "/progress-updates/1", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 404: no such record.
	w = postJSON(t, r, "/progress-updates/999", testutil.BearerToken(t, testutil.BuilderFid), body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 403: somebody else's record, regardless of payload validity.
	w = postJSON(t, r, "/progress-updates/1", testutil.BearerToken(t, testutil.OutsiderFid), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.ProgressUpdate
	require.NoError(t, db.First(&unchanged, update.ID).Error)
	assert.Equal(t, "ship more", unchanged.NextSteps)
}

func TestUpdateProgressPartialReplacement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)
	update := seedProgressUpdate(t, db, testutil.BuilderFid)

	w := postJSON(t, r, "/progress-updates/1", testutil.BearerToken(t, testutil.BuilderFid), map[string]interface{}{
		"next_steps": "integrate notifications",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.ProgressUpdate
	require.NoError(t, db.First(&stored, update.ID).Error)
	assert.Equal(t, "integrate notifications", stored.NextSteps)
	assert.Equal(t, "shipped the thing", stored.KeyFeatures, "omitted fields keep their values")
}

func TestDeleteProgressOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)
	update := seedProgressUpdate(t, db, testutil.BuilderFid)

	req := httptest.NewRequest(http.MethodDelete, "/progress-updates/1", nil)
	req.Header.Set("Authorization", testutil.BearerToken(t, testutil.OutsiderFid))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/progress-updates/1", nil)
	req.Header.Set("Authorization", testutil.BearerToken(t, testutil.BuilderFid))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ProgressUpdate{}).Where("id = ?", update.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListProgressUpdatesPublic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter(t)
	seedProgressUpdate(t, db, testutil.BuilderFid)

	w := getJSON(t, r, "/progress-updates", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Updates []models.ProgressUpdate `json:"updates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Updates, 1)

	w = getJSON(t, r, "/progress-updates?team=Nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Updates)
}
