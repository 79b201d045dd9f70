package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/ctxutil"
)

const headerRequestID = "X-Request-Id"

// AttachRequestContext assigns each request an id (reusing the caller's
// X-Request-Id when present) and stores it on the request context.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx := ctxutil.WithRequestMeta(c.Request.Context(), &ctxutil.RequestMeta{
			RequestID: reqID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", reqID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}
