package server

import (
	"time"

	"artbid-client/internal/identity"
	handler "artbid-client/services/view/handler"
	"artbid-client/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// SessionMiddleware resolves the viewer identity from the session headers the
// upstream auth layer injects, and stores the canonical Viewer on the
// request context. An absent or unknown session resolves to guest; the
// eligibility rules take it from there.
func SessionMiddleware(c *gin.Context) {
	raw := identity.RawSession{
		UserID:        c.GetHeader("X-User-Id"),
		Role:          c.GetHeader("X-User-Role"),
		ArtistID:      c.GetHeader("X-Artist-Id"),
		ArtistsID:     c.GetHeader("X-Artists-Id"),
		ProfileArtist: c.GetHeader("X-Artist-Profile-Id"),
	}
	c.Set(handler.ViewerContextKey, identity.Resolve(raw))
	c.Next()
}
