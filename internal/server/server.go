// Package server wires the services, handlers and routes of the site.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/config"
	"github.com/ncobase/yatube/core"
	authRepository "github.com/ncobase/yatube/core/auth/data/repository"
	authHandler "github.com/ncobase/yatube/core/auth/handler"
	authMiddleware "github.com/ncobase/yatube/core/auth/middleware"
	authService "github.com/ncobase/yatube/core/auth/service"
	groupRepository "github.com/ncobase/yatube/core/group/data/repository"
	groupHandler "github.com/ncobase/yatube/core/group/handler"
	groupService "github.com/ncobase/yatube/core/group/service"
	postRepository "github.com/ncobase/yatube/core/post/data/repository"
	postHandler "github.com/ncobase/yatube/core/post/handler"
	postService "github.com/ncobase/yatube/core/post/service"
	userRepository "github.com/ncobase/yatube/core/user/data/repository"
	userService "github.com/ncobase/yatube/core/user/service"
	"github.com/ncobase/yatube/data"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/nanoid"
	"github.com/ncobase/yatube/net/cookie"
	"github.com/ncobase/yatube/security/jwt"
	"github.com/ncobase/yatube/web"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop signal
const shutdownTimeout = 30 * time.Second

// Services groups the business services of the site
type Services struct {
	User  *userService.UserService
	Group *groupService.GroupService
	Post  *postService.PostService
	Auth  *authService.AuthService
}

// NewServices builds every service on top of the data layer
func NewServices(cfg *config.Config, d *data.Data, log *logger.Logger) *Services {
	users := userService.NewUserService(userRepository.NewUserRepository(d.DB), log)
	groups := groupService.NewGroupService(groupRepository.NewGroupRepository(d.DB), log)
	posts := postService.NewPostService(postRepository.NewPostRepository(d.DB), users, groups, cfg.Paging.PerPage, log)

	secret := cfg.Auth.JWT.Secret
	if secret == "" {
		secret = nanoid.String(64)
		log.Warn(context.Background(), "auth.jwt.secret is not set, sessions will not survive a restart")
	}
	tokens := jwt.NewTokenManager(secret, cfg.Auth.JWT.Expire)

	var revoked authRepository.RevocationRepository
	if d.Redis != nil {
		revoked = authRepository.NewRedisRevocationRepository(d.Redis)
	} else {
		revoked = authRepository.NewMemoryRevocationRepository()
	}

	return &Services{
		User:  users,
		Group: groups,
		Post:  posts,
		Auth:  authService.NewAuthService(users, tokens, revoked, log),
	}
}

// Server is the HTTP surface of the site
type Server struct {
	config   *config.Config
	logger   *logger.Logger
	data     *data.Data
	services *Services
	engine   *gin.Engine
}

// New creates the server, migrating the schema first when configured
func New(ctx context.Context, cfg *config.Config, d *data.Data, log *logger.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if d == nil || d.DB == nil {
		return nil, fmt.Errorf("data layer not initialized")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	if cfg.Data.Database.Migrate {
		if err := d.Migrate(ctx, core.Models()...); err != nil {
			return nil, err
		}
	}

	return &Server{
		config:   cfg,
		logger:   log,
		data:     d,
		services: NewServices(cfg, d, log),
	}, nil
}

// Services returns the services behind the handlers
func (s *Server) Services() *Services {
	return s.services
}

// SetupRouter builds the gin engine with every route of the site
func (s *Server) SetupRouter() (*gin.Engine, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.RedirectTrailingSlash = true
	r.Use(s.traceMiddleware())
	r.Use(s.loggerMiddleware())
	r.Use(gin.CustomRecovery(s.recover))

	cookies := cookie.Options{Domain: s.config.Auth.CookieDomain, Secure: s.config.Auth.CookieSecure}
	loginURL := s.config.Auth.LoginURL

	r.GET("/health", s.health)

	site := r.Group("/",
		authMiddleware.CurrentUser(s.services.Auth, cookies, s.logger),
		authMiddleware.CSRF(cookies, s.logger),
	)
	loginRequired := authMiddleware.LoginRequired(loginURL)

	posts := postHandler.NewPostHandler(s.services.Post, s.services.User, s.logger)
	groups := groupHandler.NewGroupHandler(s.services.Group, s.services.Post, s.logger)
	auth := authHandler.NewAuthHandler(s.services.Auth, cookies, loginURL, s.logger)

	site.GET("/", posts.Index)
	site.GET("/group/", groups.Index)
	site.GET("/group/:slug/", groups.Detail)
	site.GET("/new/", loginRequired, posts.NewPostPage)
	site.POST("/new/", loginRequired, posts.NewPost)

	site.GET("/auth/login/", auth.LoginPage)
	site.POST("/auth/login/", auth.Login)
	site.GET("/auth/logout/", auth.Logout)
	site.POST("/auth/logout/", auth.Logout)
	site.GET("/auth/signup/", auth.SignupPage)
	site.POST("/auth/signup/", auth.Signup)

	site.GET("/about/author/", page("about/author.html"))
	site.GET("/about/tech/", page("about/tech.html"))

	site.GET("/:username/", posts.Profile)
	site.GET("/:username/:id/", posts.Detail)
	site.GET("/:username/:id/edit/", loginRequired, posts.EditPage)
	site.POST("/:username/:id/edit/", loginRequired, posts.Edit)

	r.NoRoute(authMiddleware.CurrentUser(s.services.Auth, cookies, s.logger), web.NotFound)

	s.engine = r
	return r, nil
}

func page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		web.HTML(c, http.StatusOK, name, nil)
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	if s.engine == nil {
		if _, err := s.SetupRouter(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error(context.Background(), "server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info(context.Background(), "server exited")
	return nil
}
