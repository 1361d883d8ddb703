// Package middleware resolves sessions and guards form posts.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	authStructs "github.com/ncobase/yatube/core/auth/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/net/cookie"
	"github.com/ncobase/yatube/security/jwt"
)

// Authenticator resolves a session token to its account
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*userStructs.User, error)
}

// CurrentUser resolves the session cookie of every request. Requests without
// a valid session continue anonymously and lose the stale cookie.
func CurrentUser(auth Authenticator, opts cookie.Options, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)

		token, err := cookie.GetSessionToken(c.Request)
		if err != nil {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		user, err := auth.Authenticate(ctx, token)
		switch {
		case err == nil:
			ctx = ctxutil.SetUserID(ctx, user.ID)
			ctx = ctxutil.SetUsername(ctx, user.Username)
		case isSessionError(err):
			logger.Debug(ctx, "discarding session cookie", "reason", err.Error())
			cookie.ClearSessionToken(c.Writer, opts)
		default:
			logger.Error(ctx, "failed to resolve session", "error", err)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func isSessionError(err error) bool {
	return errors.Is(err, jwt.ErrInvalidToken) ||
		errors.Is(err, jwt.ErrTokenExpired) ||
		errors.Is(err, authStructs.ErrSessionRevoked)
}

// LoginRequired redirects anonymous requests to the login page, keeping the
// requested URI in the next parameter.
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctxutil.GetUserID(c.Request.Context()) != 0 {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, loginURL+"?next="+escapeNext(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// escapeNext query-escapes a URI but keeps its slashes readable
func escapeNext(uri string) string {
	return strings.ReplaceAll(url.QueryEscape(uri), "%2F", "/")
}
