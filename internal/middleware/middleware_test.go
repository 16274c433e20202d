package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"github.com/wbvaa/portal/internal/pkg/sessiontoken"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   dto.ErrorCode
	}{
		{fmt.Errorf("wrap: %w", apperrors.ErrDistrictNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrImageNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.NewImageNotFoundError("gone"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrMissingKey, http.StatusNotFound, dto.ErrorCodeMissingKey},
		{apperrors.ErrUnknownView, http.StatusBadRequest, dto.ErrorCodeUnknownView},
		{apperrors.ErrUnsupportedLanguage, http.StatusBadRequest, dto.ErrorCodeUnsupportedLanguage},
		{apperrors.ErrUnknownCategory, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{fmt.Errorf("%w: too long", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{apperrors.ErrSessionExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredSession},
		{apperrors.ErrSessionInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidSession},
		{apperrors.ErrSessionNotFound, http.StatusUnauthorized, dto.ErrorCodeInvalidSession},
		{apperrors.ErrSessionClosed, http.StatusServiceUnavailable, dto.ErrorCodeUnavailable},
		{apperrors.NewSessionLimitError(3), http.StatusServiceUnavailable, dto.ErrorCodeUnavailable},
		{errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestHandleAPIErrorUsesStatusMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, fmt.Errorf("select: %w", apperrors.NewDistrictNotFoundError("nowhere")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, `District "nowhere" does not exist`, body.Error.Message)
}

func TestHandleAPIErrorCarriesCustomDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewSessionLimitError(2))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body struct {
		Error struct {
			Message string         `json:"message"`
			Details map[string]int `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Error.Details["limit"])
	assert.Contains(t, body.Error.Message, "Too many visitors")
}

func TestCustomBindingTags(t *testing.T) {
	r := gin.New()
	r.POST("/lang", func(c *gin.Context) {
		var req dto.SetLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/view", func(c *gin.Context) {
		var req dto.SelectViewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		path, body string
		status     int
	}{
		{"/lang", `{"language":"bn"}`, http.StatusNoContent},
		{"/lang", `{"language":"en-IN"}`, http.StatusNoContent},
		{"/lang", `{"language":"fr"}`, http.StatusBadRequest},
		{"/lang", `{}`, http.StatusBadRequest},
		{"/view", `{"view":"districts"}`, http.StatusNoContent},
		{"/view", `{"view":"../etc"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "%s %s", tc.path, tc.body)
	}
}

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *services.SessionService) {
	return newCappedSessionMiddleware(t, 0)
}

func newCappedSessionMiddleware(t *testing.T, maxSessions int) (*SessionMiddleware, *services.SessionService) {
	t.Helper()
	catalog := &models.Catalog{
		NavItems:   []models.NavItem{{ID: models.ViewHome}, {ID: models.ViewDistricts}},
		HeroSlides: []string{"https://example.org/a.jpg", "https://example.org/b.jpg"},
	}
	sessions := services.NewSessionService(catalog, services.SessionConfig{
		SlideInterval: time.Hour,
		LoadingDelay:  time.Hour,
		MaxSessions:   maxSessions,
	}, nil, zerolog.Nop())
	t.Cleanup(sessions.Close)

	tokens := sessiontoken.NewService(sessiontoken.Config{SecretKey: "k", TTL: time.Hour, Issuer: "test"})
	return NewSessionMiddleware(sessions, tokens, "sid", false), sessions
}

func sessionRouter(m *SessionMiddleware) *gin.Engine {
	r := gin.New()
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SessionIDKey))
	}
	r.GET("/page", m.Attach(), handler)
	r.GET("/api", m.Require(), handler)
	r.DELETE("/api", m.Require(), func(c *gin.Context) {
		m.Unmount(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAttachMountsAndReuses(t *testing.T) {
	m, sessions := newTestSessionMiddleware(t)
	r := sessionRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Body.String()
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, sessions.Count())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, 1, sessions.Count())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, sessions.Count())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(w, req)
	assert.NotEqual(t, id, w.Body.String(), "an unmounted root is replaced")
}

func TestRequireRejectsMissingOrForgedCookie(t *testing.T) {
	m, _ := newTestSessionMiddleware(t)
	r := sessionRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAttachStopsMountingAtSessionLimit(t *testing.T) {
	m, sessions := newCappedSessionMiddleware(t, 3)
	r := sessionRouter(m)

	var ok, busy int
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusServiceUnavailable:
			busy++
			assert.Empty(t, w.Result().Cookies())
		}
	}

	assert.Equal(t, 3, ok)
	assert.Equal(t, 47, busy)
	assert.Equal(t, 3, sessions.Count())
}
