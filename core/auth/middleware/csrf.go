package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/nanoid"
	"github.com/ncobase/yatube/net/cookie"
	"github.com/ncobase/yatube/web"
)

const (
	// CSRFFormField is the hidden form field carrying the token
	CSRFFormField = "csrfmiddlewaretoken"
	// CSRFHeader carries the token for scripted requests
	CSRFHeader = "X-CSRF-Token"
)

// CSRF issues the CSRF cookie and rejects unsafe requests whose submitted
// token does not match it.
func CSRF(opts cookie.Options, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := cookie.GetCSRFToken(c.Request)
		known := err == nil && nanoid.IsToken(token, nanoid.CSRFTokenSize)
		if !known {
			token = nanoid.CSRFToken()
			if err := cookie.SetCSRFToken(c.Writer, token, opts); err != nil {
				logger.Error(c.Request.Context(), "failed to set csrf cookie", "error", err)
			}
		}
		c.Set(web.CSRFTokenKey, token)

		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFHeader)
		if submitted == "" {
			submitted = c.PostForm(CSRFFormField)
		}
		if !known || subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			logger.Warn(c.Request.Context(), "csrf verification failed",
				"method", c.Request.Method, "path", c.Request.URL.Path, "cookie", known)
			web.Forbidden(c)
			return
		}
		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
