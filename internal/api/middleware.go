package api

import (
	"alcyxob/fitlog/internal/service"
	"alcyxob/fitlog/internal/session"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextSessionIDKey = "sessionID"
)

const (
	// ViewerHeader selects whose page /me serves. There is no authentication.
	ViewerHeader = "X-User-ID"
	// SessionCookieName holds the browsing session the done markers belong to.
	SessionCookieName = "fitlog_session"
)

// ViewerMiddleware puts the viewing user's id into the context: the
// X-User-ID header when present, defaultUserID otherwise.
func ViewerMiddleware(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(ViewerHeader))
		if userID == "" {
			userID = defaultUserID
		}
		if userID == "" {
			abortWithError(c, http.StatusBadRequest, "No user selected")
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// SessionMiddleware reads the session cookie, issuing a new session id when
// the request carries none.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = session.NewID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sessionID, 0, "/", "", false, true)
		}
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

// Helper function for consistent error responses
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service errors onto HTTP status codes.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	return getStringFromContext(c, ContextUserIDKey)
}

func getSessionIDFromContext(c *gin.Context) (string, error) {
	return getStringFromContext(c, ContextSessionIDKey)
}

func getStringFromContext(c *gin.Context, key string) (string, error) {
	raw, exists := c.Get(key)
	if !exists {
		return "", errors.New(key + " not found in context")
	}
	value, ok := raw.(string)
	if !ok {
		return "", errors.New("invalid " + key + " type in context")
	}
	return value, nil
}
