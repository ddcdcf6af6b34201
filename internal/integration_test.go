package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"argus-backend/config"
	"argus-backend/internal/api"
	"argus-backend/internal/booking"
	"argus-backend/internal/db"
	"argus-backend/internal/store"
	"argus-backend/internal/voting"
)

type testEnv struct {
	router *gin.Engine
	clock  *clockwork.FakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))

	appStore := store.NewGormStore(gormDB)
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC))

	cfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	}
	router := api.NewRouter(cfg, appStore,
		booking.NewGuard(appStore),
		voting.NewGuard(appStore, clock),
		voting.NewSessionService(appStore))

	return &testEnv{router: router, clock: clock}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// TestReservationFlow walks the reservation lifecycle through the HTTP
// surface: seed an area, book it, collide on the same slot, cancel, rebook.
func TestReservationFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/condominiums", gin.H{"name": "Residencial Argus", "address": "Rua A, 100"})
	require.Equal(t, http.StatusCreated, w.Code)
	var condo struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &condo)

	w = env.do(t, http.MethodPost, "/api/areas", gin.H{"name": "Pool", "available": true, "condominiumId": condo.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	// First booking wins.
	w = env.do(t, http.MethodPost, "/api/reservations", gin.H{"areaName": "Pool", "reserveDate": "01/06/2024"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID       int64  `json:"id"`
		AreaName string `json:"areaName"`
		Date     string `json:"reserveDate"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Pool", created.AreaName)
	assert.Equal(t, "01/06/2024", created.Date)

	// Immediate repeat for the same slot conflicts.
	w = env.do(t, http.MethodPost, "/api/reservations", gin.H{"areaName": "Pool", "reserveDate": "01/06/2024"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown area is a 404, malformed date a 400.
	w = env.do(t, http.MethodPost, "/api/reservations", gin.H{"areaName": "Sauna", "reserveDate": "01/06/2024"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodPost, "/api/reservations", gin.H{"areaName": "Pool", "reserveDate": "2024-06-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &listed)
	assert.Len(t, listed, 1)

	// An area with live reservations cannot be deleted.
	w = env.do(t, http.MethodGet, "/api/areas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var areas []struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &areas)
	require.Len(t, areas, 1)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/areas/%d", areas[0].ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Cancelling frees the slot.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cancel struct {
		Message string `json:"message"`
	}
	decode(t, w, &cancel)
	assert.Contains(t, cancel.Message, "Pool")
	assert.Contains(t, cancel.Message, "01/06/2024")

	w = env.do(t, http.MethodPost, "/api/reservations", gin.H{"areaName": "Pool", "reserveDate": "01/06/2024"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, "/api/reservations/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestVotingFlow walks a session through its window: open vote, duplicate
// rejection, and the closed-session rejection after the clock passes the end.
func TestVotingFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", gin.H{
		"name":     "Joana Lima",
		"cpf":      "12345678900",
		"password": "s3cret-pw",
		"phone":    "11-99999-0000",
		"role":     "RESIDENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &user)
	assert.NotContains(t, w.Body.String(), "s3cret-pw")

	w = env.do(t, http.MethodPost, "/api/sessions", gin.H{
		"proposal":        "Renovate the pool deck",
		"description":     "Resurface and add night lighting",
		"opensAt":         "01/06/2024",
		"closesAt":        "07/06/2024",
		"condominiumName": "Residencial Argus",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var session struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &session)

	// Inverted window is rejected outright.
	w = env.do(t, http.MethodPost, "/api/sessions", gin.H{
		"proposal":        "Backwards",
		"opensAt":         "07/06/2024",
		"closesAt":        "01/06/2024",
		"condominiumName": "Residencial Argus",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// June 3rd: the session is open.
	w = env.do(t, http.MethodPost, "/api/votes", gin.H{"sessionId": session.ID, "userId": user.ID, "choice": true})
	require.Equal(t, http.StatusCreated, w.Code)
	var vote struct {
		ID        int64  `json:"id"`
		Choice    bool   `json:"choice"`
		Proposal  string `json:"proposal"`
		VoterName string `json:"voterName"`
	}
	decode(t, w, &vote)
	assert.True(t, vote.Choice)
	assert.Equal(t, "Joana Lima", vote.VoterName)

	// Re-voting the next day is a conflict.
	env.clock.Advance(24 * time.Hour)
	w = env.do(t, http.MethodPost, "/api/votes", gin.H{"sessionId": session.ID, "userId": user.ID, "choice": false})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A session with votes cannot be deleted.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/sessions/%d", session.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// June 8th: one day past closing, a fresh voter is turned away.
	env.clock.Advance(4 * 24 * time.Hour)
	w = env.do(t, http.MethodPost, "/api/users", gin.H{
		"name":     "Carlos Souza",
		"cpf":      "98765432100",
		"password": "another-pw",
		"phone":    "11-98888-0000",
		"role":     "RESIDENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var late struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &late)

	w = env.do(t, http.MethodPost, "/api/votes", gin.H{"sessionId": session.ID, "userId": late.ID, "choice": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/sessions/%d/votes", session.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var votes []struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &votes)
	assert.Len(t, votes, 1)

	w = env.do(t, http.MethodGet, "/api/sessions/9999/votes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestOccurrenceProtocol verifies a reported occurrence opens with a usable
// protocol code and walks the status transitions.
func TestOccurrenceProtocol(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", gin.H{
		"name":     "Joana Lima",
		"cpf":      "12345678900",
		"password": "s3cret-pw",
		"phone":    "11-99999-0000",
		"role":     "RESIDENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &user)

	w = env.do(t, http.MethodPost, "/api/occurrences", gin.H{
		"title":       "Leaking pipe in garage",
		"description": "Water pooling near spot 12",
		"reporterId":  user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var occ struct {
		ID       int64  `json:"id"`
		Protocol string `json:"protocol"`
		Status   string `json:"status"`
	}
	decode(t, w, &occ)
	assert.Equal(t, "OPEN", occ.Status)
	_, err := uuid.Parse(occ.Protocol)
	assert.NoError(t, err, "protocol must be a well-formed code")

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/occurrences/%d", occ.ID), gin.H{"status": "RESOLVED"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &occ)
	assert.Equal(t, "RESOLVED", occ.Status)

	// Unknown reporter is rejected before anything is written.
	w = env.do(t, http.MethodPost, "/api/occurrences", gin.H{"title": "Ghost report", "reporterId": int64(9999)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestAnnouncementCRUD exercises the notice board endpoints.
func TestAnnouncementCRUD(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/condominiums", gin.H{"name": "Residencial Argus"})
	require.Equal(t, http.StatusCreated, w.Code)
	var condo struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &condo)

	w = env.do(t, http.MethodPost, "/api/users", gin.H{
		"name":          "Admin Ana",
		"cpf":           "11122233344",
		"password":      "adm1n-pw",
		"phone":         "11-90000-0000",
		"role":          "ADMIN",
		"condominiumId": condo.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var admin struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &admin)

	// A condominium with users cannot be deleted.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/condominiums/%d", condo.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/announcements", gin.H{
		"title":         "Elevator maintenance",
		"body":          "Elevator B is down on Friday morning.",
		"authorId":      admin.ID,
		"condominiumId": condo.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var notice struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &notice)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/announcements/%d", notice.ID), gin.H{"body": "Rescheduled to Saturday."})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/announcements/%d", notice.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/announcements/%d", notice.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestDuplicateCPF verifies the unique index on users surfaces as a conflict.
func TestDuplicateCPF(t *testing.T) {
	env := newTestEnv(t)

	payload := gin.H{
		"name":     "Joana Lima",
		"cpf":      "12345678900",
		"password": "s3cret-pw",
		"phone":    "11-99999-0000",
		"role":     "RESIDENT",
	}
	w := env.do(t, http.MethodPost, "/api/users", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/users", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}
