package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stagepass/api/internal/helpers"
	"github.com/stagepass/api/internal/models"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// Auth validates the bearer token on the Authorization header and
// stores its claims on the request context under "user".
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized access", models.ErrUnauthorized))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := helpers.ParseToken(jwtSecret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Invalid or expired token", models.ErrUnauthorized))
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireAdmin gates a route group on the token's admin flag. It must
// run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		claims, ok := value.(*helpers.Claims)
		if !exists || !ok || !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("Admin access required", models.ErrUnauthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}
