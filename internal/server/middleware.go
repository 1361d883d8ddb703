package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/net/resp"
	"github.com/ncobase/yatube/version"
	"github.com/ncobase/yatube/web"
)

// TraceHeader echoes the trace id of the request
const TraceHeader = "X-Trace-ID"

func (s *Server) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(TraceHeader); id != "" {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)
		ctx = ctxutil.SetClientIP(ctx, c.ClientIP())
		ctx = ctxutil.SetUserAgent(ctx, c.Request.UserAgent())

		c.Header(TraceHeader, traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		args := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration", duration.String(),
			"ip", c.ClientIP(),
		}
		if uid := ctxutil.GetUserID(c.Request.Context()); uid != 0 {
			args = append(args, "user_id", uid)
		}

		if status >= http.StatusInternalServerError {
			s.logger.Error(c.Request.Context(), "HTTP request", args...)
			return
		}
		s.logger.Info(c.Request.Context(), "HTTP request", args...)
	}
}

func (s *Server) recover(c *gin.Context, recovered any) {
	s.logger.Error(c.Request.Context(), "panic recovered", "path", c.Request.URL.Path, "panic", recovered)
	web.ServerError(c)
}

func (s *Server) health(c *gin.Context) {
	health, ok := s.data.Health(c.Request.Context())
	health["version"] = version.GetVersionInfo().Version
	if !ok {
		resp.Fail(c.Writer, resp.ServiceUnavailable("data layer unavailable", health))
		return
	}
	resp.Success(c.Writer, health)
}
