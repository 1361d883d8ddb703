// Package handler exposes the login, logout and signup pages.
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/core/auth/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/net/cookie"
	"github.com/ncobase/yatube/validator"
	"github.com/ncobase/yatube/web"
)

// AuthService is the part of the auth service the pages use
type AuthService interface {
	Login(ctx context.Context, form *structs.LoginForm) (*structs.Session, error)
	Logout(ctx context.Context, token string) error
	Signup(ctx context.Context, form *structs.SignupForm) (*userStructs.User, error)
}

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService AuthService
	cookies     cookie.Options
	loginURL    string
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService AuthService, cookies cookie.Options, loginURL string, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		loginURL:    loginURL,
		logger:      logger,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "auth/login.html", gin.H{
		"form": &structs.LoginForm{},
		"next": safeNext(c.Query("next")),
	})
}

// Login signs the user in and returns to the next page.
func (h *AuthHandler) Login(c *gin.Context) {
	form := &structs.LoginForm{}
	if err := c.ShouldBind(form); err != nil {
		h.renderLogin(c, form, validator.FieldErrors{validator.NonFieldKey: err.Error()})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), form)
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.renderLogin(c, form, fieldErrs)
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "login failed", "error", err)
		web.ServerError(c)
		return
	}

	if err := cookie.SetSessionToken(c.Writer, session.Token, session.TTL, h.cookies); err != nil {
		h.logger.Error(c.Request.Context(), "failed to set session cookie", "error", err)
		web.ServerError(c)
		return
	}

	next := safeNext(form.Next)
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) renderLogin(c *gin.Context, form *structs.LoginForm, errs validator.FieldErrors) {
	form.Password = ""
	web.HTML(c, http.StatusOK, "auth/login.html", gin.H{
		"form":   form,
		"next":   safeNext(form.Next),
		"errors": errs,
	})
}

// Logout revokes the session and renders the logged out page.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if token, err := cookie.GetSessionToken(c.Request); err == nil {
		if err := h.authService.Logout(ctx, token); err != nil {
			h.logger.Error(ctx, "failed to log out", "error", err)
			web.ServerError(c)
			return
		}
	}
	cookie.ClearSessionToken(c.Writer, h.cookies)

	ctx = ctxutil.SetUsername(ctxutil.SetUserID(ctx, 0), "")
	c.Request = c.Request.WithContext(ctx)
	web.HTML(c, http.StatusOK, "auth/logged_out.html", nil)
}

// SignupPage renders the registration form.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "auth/signup.html", gin.H{"form": &structs.SignupForm{}})
}

// Signup creates the account and sends the user to the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	form := &structs.SignupForm{}
	if err := c.ShouldBind(form); err != nil {
		h.renderSignup(c, form, validator.FieldErrors{validator.NonFieldKey: err.Error()})
		return
	}

	_, err := h.authService.Signup(c.Request.Context(), form)
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.renderSignup(c, form, fieldErrs)
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "signup failed", "error", err)
		web.ServerError(c)
		return
	}

	c.Redirect(http.StatusFound, h.loginURL)
}

func (h *AuthHandler) renderSignup(c *gin.Context, form *structs.SignupForm, errs validator.FieldErrors) {
	form.Password1, form.Password2 = "", ""
	web.HTML(c, http.StatusOK, "auth/signup.html", gin.H{"form": form, "errors": errs})
}

// safeNext keeps next only when it is a path on this site
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsRune(next, '\\') {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return next
}
