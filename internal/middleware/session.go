package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/screening-web/internal/screening"
)

const (
	// SessionCookie holds the visitor's session id
	SessionCookie = "screen_session"
	// SessionHeader lets non-browser clients carry the session id explicitly
	SessionHeader = "X-Session-ID"
	// ContextKeySession is the key for the *screening.Session in the Gin context
	ContextKeySession = "session"
)

// Sessions resolves the visitor's session from cookie or header, creating a
// new one when it is missing or expired, and refreshes the cookie.
func Sessions(store *screening.Store, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *screening.Session

		raw := c.GetHeader(SessionHeader)
		if raw == "" {
			raw, _ = c.Cookie(SessionCookie)
		}
		if raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				session = store.Get(id)
			}
		}

		if session == nil {
			session = store.Create()
			log.Debug().Str("session", session.ID.String()).Msg("Started new session")
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, session.ID.String(), int(ttl.Seconds()), "/", "", secure, true)
		c.Header(SessionHeader, session.ID.String())
		c.Set(ContextKeySession, session)

		c.Next()
	}
}

// GetSession extracts the session from the Gin context
func GetSession(c *gin.Context) *screening.Session {
	v, _ := c.Get(ContextKeySession)
	if s, ok := v.(*screening.Session); ok {
		return s
	}
	return nil
}
