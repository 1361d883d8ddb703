package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	authStructs "github.com/ncobase/yatube/core/auth/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/net/cookie"
	"github.com/ncobase/yatube/security/jwt"
	"github.com/ncobase/yatube/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthenticator map[string]error

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*userStructs.User, error) {
	err, ok := f[token]
	if !ok {
		return nil, jwt.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &userStructs.User{ID: 7, Username: "alice"}, nil
}

func quietLogger() *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return l
}

func newEngine(auth Authenticator) *gin.Engine {
	r := gin.New()
	r.HTMLRender = web.MustRenderer()
	r.Use(CurrentUser(auth, cookie.Options{}, quietLogger()), CSRF(cookie.Options{}, quietLogger()))
	r.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.String(http.StatusOK, "%d:%s", ctxutil.GetUserID(ctx), ctxutil.GetUsername(ctx))
	})
	r.GET("/private", LoginRequired("/auth/login/"), func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	r.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, "accepted")
	})
	return r
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: cookie.SessionTokenName, Value: value}
}

func TestCurrentUserResolvesSession(t *testing.T) {
	r := newEngine(fakeAuthenticator{"good": nil})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(sessionCookie("good"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7:alice", w.Body.String())
}

func TestCurrentUserClearsStaleCookie(t *testing.T) {
	r := newEngine(fakeAuthenticator{"revoked": authStructs.ErrSessionRevoked})

	for _, token := range []string{"revoked", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(sessionCookie(token))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "0:", w.Body.String())
		var cleared bool
		for _, c := range w.Result().Cookies() {
			if c.Name == cookie.SessionTokenName && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared, "token %s", token)
	}
}

func TestLoginRequiredRedirects(t *testing.T) {
	r := newEngine(fakeAuthenticator{"good": nil})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?x=1", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/private%3Fx%3D1", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(sessionCookie("good"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "secret", w.Body.String())
}

func csrfCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.CSRFTokenName {
			return c
		}
	}
	t.Fatal("csrf cookie not set")
	return nil
}

func postForm(r *gin.Engine, body url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCSRF(t *testing.T) {
	r := newEngine(fakeAuthenticator{})
	token := csrfCookie(t, r)
	require.Len(t, token.Value, 32)

	w := postForm(r, url.Values{CSRFFormField: {token.Value}}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", w.Body.String())

	w = postForm(r, url.Values{CSRFFormField: {"wrong"}}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postForm(r, url.Values{}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postForm(r, url.Values{CSRFFormField: {token.Value}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFHeader(t *testing.T) {
	r := newEngine(fakeAuthenticator{})
	token := csrfCookie(t, r)

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set(CSRFHeader, token.Value)
	req.AddCookie(token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
