package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"github.com/wbvaa/portal/internal/pkg/logger"
	"github.com/wbvaa/portal/internal/pkg/sessiontoken"
)

// Context keys set by the session middleware
const (
	SessionIDKey = "sessionID"
	viewRootKey  = "viewRoot"
)

// SessionMiddleware binds requests to their view root through a signed cookie.
type SessionMiddleware struct {
	sessions   *services.SessionService
	tokens     *sessiontoken.Service
	cookieName string
	secure     bool
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions *services.SessionService, tokens *sessiontoken.Service, cookieName string, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		tokens:     tokens,
		cookieName: cookieName,
		secure:     secure,
	}
}

// lookup resolves the request's cookie to a mounted root.
func (m *SessionMiddleware) lookup(c *gin.Context) (*services.ViewRoot, error) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	claims, err := m.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	return m.sessions.Get(claims.SessionID())
}

// Attach makes sure the request has a view root, mounting a new one and
// issuing its cookie when the cookie is missing, invalid, expired or refers
// to an unmounted root.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		root, err := m.lookup(c)
		if err != nil {
			logger.Debug().Err(err).Msg("No usable session, mounting a new view root")
			root, err = m.Mount(c)
			if err != nil {
				HandleAPIError(c, err)
				return
			}
		}
		set(c, root)
		c.Next()
	}
}

// Require rejects requests without a mounted view root.
func (m *SessionMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		root, err := m.lookup(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		set(c, root)
		c.Next()
	}
}

// Mount creates a view root for the request and sets its cookie.
func (m *SessionMiddleware) Mount(c *gin.Context) (*services.ViewRoot, error) {
	root, err := m.sessions.Mount(c.Request.Context())
	if err != nil {
		return nil, err
	}
	token, err := m.tokens.Issue(root.ID())
	if err != nil {
		m.sessions.Unmount(root.ID())
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.tokens.TTL().Seconds()), "/", "", m.secure, true)
	set(c, root)
	return root, nil
}

// Unmount ends the request's session and clears its cookie.
func (m *SessionMiddleware) Unmount(c *gin.Context) bool {
	removed := false
	if root := ViewRootFrom(c); root != nil {
		removed = m.sessions.Unmount(root.ID())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
	return removed
}

func set(c *gin.Context, root *services.ViewRoot) {
	c.Set(viewRootKey, root)
	c.Set(SessionIDKey, root.ID())
}

// ViewRootFrom returns the view root bound to the request, or nil.
func ViewRootFrom(c *gin.Context) *services.ViewRoot {
	v, ok := c.Get(viewRootKey)
	if !ok {
		return nil
	}
	root, _ := v.(*services.ViewRoot)
	return root
}
