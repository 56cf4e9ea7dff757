package middleware

import (
	"hotel-client/response"
	"hotel-client/services"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests while the gateway is logged out
func RequireSession(session *services.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			response.UnauthorizedWithMessage(c, "Please log in first")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin rejects requests unless the session has the admin role
func RequireAdmin(session *services.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			response.UnauthorizedWithMessage(c, "Please log in first")
			c.Abort()
			return
		}
		if !session.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler answers for errors handlers attached with c.Error and
// left unanswered.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		response.FromError(c, c.Errors.Last().Err)
	}
}
