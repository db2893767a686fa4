package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jamapi/config"
	"jamapi/controllers"
	"jamapi/database"
	"jamapi/dto"
	"jamapi/services"
)

func newTestServer(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	log := zap.NewNop()
	return SetupRouter(cfg, log, controllers.Controllers{
		Jams:        controllers.NewJamController(services.NewJamService(db, nil, log), log),
		Teams:       controllers.NewTeamController(services.NewTeamService(db), log),
		Users:       controllers.NewUserController(services.NewUserService(db), log),
		Infractions: controllers.NewInfractionController(services.NewInfractionService(db), log),
		Winners:     controllers.NewWinnerController(services.NewWinnerService(db), log),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJamRoundTrip(t *testing.T) {
	r := newTestServer(t, &config.Config{Debug: true})

	w := doJSON(t, r, http.MethodPost, "/codejams", dto.CreateJamReq{
		Name:    "Winter Code Jam",
		Ongoing: true,
		Teams: []dto.CreateJamTeam{
			{Name: "lemoncakes", Users: []dto.CreateJamUser{
				{UserID: 1, IsLeader: true},
				{UserID: 2},
			}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created dto.JamResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Teams, 1)

	// Fetching by id returns the same view.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/codejams/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.JamResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// The -1 sentinel resolves to the ongoing jam.
	w = doJSON(t, r, http.MethodGet, "/codejams/-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ongoing dto.JamResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ongoing))
	assert.Equal(t, created.ID, ongoing.ID)
}

func TestTeamMembershipRoutes(t *testing.T) {
	r := newTestServer(t, &config.Config{Debug: true})

	w := doJSON(t, r, http.MethodPost, "/codejams", dto.CreateJamReq{
		Name: "Jam",
		Teams: []dto.CreateJamTeam{
			{Name: "joiners", Users: []dto.CreateJamUser{{UserID: 1, IsLeader: true}}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var jam dto.JamResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jam))
	teamID := jam.Teams[0].ID

	w = doJSON(t, r, http.MethodPost, "/users/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/teams/%d/users/2", teamID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/teams/%d/users", teamID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members []dto.TeamUserResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	assert.Len(t, members, 2)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/teams/%d/users/2", teamID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Static /teams/find coexists with the :id routes.
	w = doJSON(t, r, http.MethodGet, "/teams/find?name=JOINERS&jam_id="+fmt.Sprint(jam.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestWinnerRouteMissingJam(t *testing.T) {
	r := newTestServer(t, &config.Config{Debug: true})

	w := doJSON(t, r, http.MethodPost, "/winners/999", []dto.WinnerEntry{})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestAuthRequiredOutsideDebug(t *testing.T) {
	r := newTestServer(t, &config.Config{APIToken: "s3cret"})

	w := doJSON(t, r, http.MethodGet, "/codejams", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/codejams", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open.
	w = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
