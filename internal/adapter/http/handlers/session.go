package handlers

import "github.com/gin-gonic/gin"

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
)

// sessionIDFromRequest resolves the shopper session: explicit header first
// (API integrations), browser cookie as fallback (the processor bounces the
// shopper's browser to the callback route, so the cookie rides along).
func sessionIDFromRequest(c *gin.Context) string {
	if v := c.GetHeader(sessionHeader); v != "" {
		return v
	}
	if v, err := c.Cookie(sessionCookie); err == nil {
		return v
	}
	return ""
}
