package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wbvaa/portal/internal/app/controllers"
	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/app/repositories"
	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/app/views"
	"github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/logger"
	"github.com/wbvaa/portal/internal/pkg/sessiontoken"
	"github.com/wbvaa/portal/internal/pkg/websocket"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	goleak.VerifyTestMain(m)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog, err := repositories.EmbeddedCatalog()
	require.NoError(t, err)

	svc := services.NewServices(catalog, services.SessionConfig{
		SlideInterval:   time.Hour,
		LoadingDelay:    time.Hour,
		IdleTimeout:     time.Hour,
		SweepInterval:   time.Hour,
		DefaultLanguage: models.LanguageEnglish,
		Images:          services.ImageURLs{AssetHost: "https://assets.example", FallbackURL: "https://example.org/f.jpg"},
	}, nil)
	t.Cleanup(svc.Sessions.Close)

	tokens := sessiontoken.NewService(sessiontoken.Config{SecretKey: "test-secret", TTL: time.Hour, Issuer: "test"})
	sessions := middleware.NewSessionMiddleware(svc.Sessions, tokens, "wbvaa_session", false)
	hub := websocket.NewHub(logger.Component("websocket"))

	router := gin.New()
	tmpl, err := views.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)

	SetupRouter(router,
		controllers.NewPageController(views.NewBuilder(svc.Catalog, svc.Translations, svc.Records)),
		controllers.NewStateController(sessions, tokens.TTL()),
		controllers.NewCatalogController(svc.Catalog, svc.Records, svc.Translations),
		controllers.NewImageController(),
		websocket.NewHandler(hub, logger.Component("websocket")),
		sessions,
	)
	return router
}

// browser replays the session cookie like a browser would.
type browser struct {
	t       *testing.T
	router  http.Handler
	cookies []*http.Cookie
}

func newBrowser(t *testing.T) *browser {
	return &browser{t: t, router: newRouter(t)}
}

func (b *browser) do(method, path, body string) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		b.cookies = cookies
	}
	return w
}

func (b *browser) state() services.State {
	b.t.Helper()
	w := b.do(http.MethodGet, "/api/v1/state", "")
	require.Equal(b.t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data services.State `json:"data"`
	}
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestPageMountsSession(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Advancing the Veterinary Profession")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	require.Len(t, b.cookies, 1)
	assert.True(t, b.cookies[0].HttpOnly)

	first := b.cookies[0].Value
	b.do(http.MethodGet, "/", "")
	assert.Equal(t, first, b.cookies[0].Value, "an existing session is reused")
}

func TestPageFormsRedirect(t *testing.T) {
	b := newBrowser(t)
	b.do(http.MethodGet, "/", "")

	w := b.do(http.MethodPost, "/nav/professional", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	s := b.state()
	assert.Equal(t, models.ViewProfessional, s.View)
	assert.True(t, s.Loading)

	b.do(http.MethodPost, "/lang", "")
	b.do(http.MethodPost, "/theme", "")
	b.do(http.MethodPost, "/menu", "")
	s = b.state()
	assert.Equal(t, models.LanguageBengali, s.Language)
	assert.True(t, s.Dark)
	assert.True(t, s.MenuOpen)

	b.do(http.MethodPost, "/districts/bankura", "")
	s = b.state()
	assert.Equal(t, models.ViewDistricts, s.View)
	assert.Equal(t, "bankura", s.DistrictID)

	b.do(http.MethodPost, "/home", "")
	assert.Equal(t, models.ViewHome, b.state().View)
}

func TestPageUnknownView(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodPost, "/nav/gallery", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeUnknownView, errorCode(t, w))
}

func TestPageSearchOpensPortal(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/search?q=transfer", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	s := b.state()
	assert.Equal(t, "transfer", s.Search)
	assert.Equal(t, models.ViewProfessional, s.View)

	b.do(http.MethodPost, "/home", "")
	b.do(http.MethodGet, "/search?q=", "")
	s = b.state()
	assert.Equal(t, "", s.Search)
	assert.Equal(t, models.ViewHome, s.View, "a blank search does not navigate")
}

func TestStateRequiresSession(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/api/v1/state", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidSession, errorCode(t, w))

	w = b.do(http.MethodPost, "/api/v1/images/vet-day-camp/failed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStateAPI(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodPost, "/api/v1/session", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data dto.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.SessionID)

	w = b.do(http.MethodPut, "/api/v1/state/language", `{"language":"bn-IN"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.LanguageBengali, b.state().Language)

	w = b.do(http.MethodPut, "/api/v1/state/language", `{"language":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.do(http.MethodPut, "/api/v1/state/view", `{"view":"districts"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ViewDistricts, b.state().View)

	w = b.do(http.MethodPut, "/api/v1/state/view", `{"view":"lounge"}`)
	assert.Equal(t, dto.ErrorCodeUnknownView, errorCode(t, w))

	w = b.do(http.MethodPut, "/api/v1/state/district", `{"districtId":"nowhere"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = b.do(http.MethodPut, "/api/v1/state/theme", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.do(http.MethodPut, "/api/v1/state/theme", `{"dark":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, b.state().Dark)

	b.do(http.MethodPost, "/api/v1/state/theme/toggle", "")
	assert.False(t, b.state().Dark)

	w = b.do(http.MethodPut, "/api/v1/state/search", `{"query":"promotion"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "promotion", b.state().Search)

	w = b.do(http.MethodPut, "/api/v1/state/search", `{"query":"`+strings.Repeat("x", 201)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSession(t *testing.T) {
	b := newBrowser(t)
	b.do(http.MethodPost, "/api/v1/session", "")
	old := b.cookies

	w := b.do(http.MethodDelete, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, w.Code)

	b.cookies = old
	w = b.do(http.MethodGet, "/api/v1/state", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "the old cookie no longer resolves")
}

func TestGalleryFailure(t *testing.T) {
	b := newBrowser(t)
	b.do(http.MethodPost, "/api/v1/session", "")

	decode := func(w *httptest.ResponseRecorder) dto.ImageStatusResponse {
		var body struct {
			Data dto.ImageStatusResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Data
	}

	w := b.do(http.MethodPost, "/api/v1/images/vet-day-camp/failed", "")
	require.Equal(t, http.StatusOK, w.Code)
	first := decode(w)
	assert.True(t, first.Changed)
	assert.True(t, first.Failed)
	assert.Equal(t, "https://example.org/f.jpg", first.Src)

	second := decode(b.do(http.MethodPost, "/api/v1/images/vet-day-camp/failed", ""))
	assert.False(t, second.Changed)
	assert.True(t, second.Failed)

	w = b.do(http.MethodPost, "/api/v1/images/nope/failed", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = b.do(http.MethodGet, "/api/v1/gallery", "")
	require.Equal(t, http.StatusOK, w.Code)
	var gallery struct {
		Data []services.ResolvedImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gallery))
	require.Len(t, gallery.Data, 3)
	assert.False(t, gallery.Data[0].Failed)
	assert.True(t, gallery.Data[1].Failed)
}

func TestRecordsEndpoint(t *testing.T) {
	b := newBrowser(t)

	type page struct {
		Data       []models.ServiceRecord `json:"data"`
		Pagination dto.PaginationInfo     `json:"pagination"`
	}
	get := func(path string) page {
		w := b.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var p page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		return p
	}

	all := get("/api/v1/records")
	assert.Len(t, all.Data, 4)
	assert.Equal(t, int64(4), all.Pagination.TotalItems)

	transfers := get("/api/v1/records?category=transfers")
	require.Len(t, transfers.Data, 1)
	assert.Equal(t, "SR002", transfers.Data[0].ID)

	second := get("/api/v1/records?q=SR00&size=3&page=2")
	require.Len(t, second.Data, 1)
	assert.Equal(t, "SR004", second.Data[0].ID)
	assert.Equal(t, 2, second.Pagination.TotalPages)

	none := get("/api/v1/records?q=zzz")
	assert.Empty(t, none.Data)

	for _, query := range []string{"page=3&size=3", "page=100000000000000000&size=100", "page=9223372036854775807"} {
		beyond := get("/api/v1/records?" + query)
		assert.Empty(t, beyond.Data, query)
		assert.Equal(t, int64(4), beyond.Pagination.TotalItems, query)
	}

	w := b.do(http.MethodGet, "/api/v1/records?category=bonus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/api/v1/nav", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"professional"`)

	w = b.do(http.MethodGet, "/api/v1/districts/kolkata", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "+91 98765 43210")

	w = b.do(http.MethodGet, "/api/v1/districts/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = b.do(http.MethodGet, "/api/v1/notices", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, b.cookies, "catalog reads do not mount sessions")
}

func TestTranslationEndpoints(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/api/v1/translations/heroTitle?lang=bn", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data dto.TranslationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ভেটেরিনারি পেশার অগ্রগতি", body.Data.Text)
	assert.Equal(t, "bn", body.Data.Language)

	w = b.do(http.MethodGet, "/api/v1/translations/heroTitle", "")
	assert.Contains(t, w.Body.String(), "Advancing the Veterinary Profession")

	w = b.do(http.MethodGet, "/api/v1/translations/noSuchKey", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeMissingKey, errorCode(t, w))

	w = b.do(http.MethodGet, "/api/v1/translations/heroTitle?lang=fr", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.do(http.MethodGet, "/api/v1/translations?lang=en", "")
	require.Equal(t, http.StatusOK, w.Code)
	var dict struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dict))
	assert.Equal(t, "Member Login", dict.Data["login"])
}

func TestStaticAndHealth(t *testing.T) {
	b := newBrowser(t)

	w := b.do(http.MethodGet, "/static/site.css", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = b.do(http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
