// Package web renders the HTML pages of the site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/validator"
)

//go:embed templates
var templateFS embed.FS

// CSRFTokenKey is the gin key holding the CSRF token of the request
const CSRFTokenKey = "csrf_token"

// layout is the template every page executes
const layout = "base"

var shared = []string{"templates/layouts/*.html", "templates/includes/*.html"}

// Renderer implements gin's HTMLRender with one template set per page, so
// pages can redefine the blocks of the layout independently.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page under templates/ together with the layout
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	err := fs.WalkDir(templateFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".html" {
			return err
		}
		name := strings.TrimPrefix(p, "templates/")
		if strings.HasPrefix(name, "layouts/") || strings.HasPrefix(name, "includes/") {
			return nil
		}

		t, err := template.New(name).ParseFS(templateFS, append(shared, p)...)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// MustRenderer is NewRenderer for templates known to be valid
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = template.Must(template.New(name).Parse(`{{define "base"}}template ` + template.HTMLEscapeString(name) + ` not found{{end}}`))
	}
	return render.HTML{Template: t, Name: layout, Data: data}
}

// Has reports whether a page is known
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// HTML renders a page with the values every page expects: the current
// username, the CSRF token and an errors map.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["current_user"] = ctxutil.GetUsername(c.Request.Context())
	data[CSRFTokenKey] = c.GetString(CSRFTokenKey)
	if _, ok := data["errors"]; !ok {
		data["errors"] = validator.FieldErrors{}
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "misc/404.html", gin.H{"path": c.Request.URL.Path})
	c.Abort()
}

// ServerError renders the 500 page
func ServerError(c *gin.Context) {
	HTML(c, http.StatusInternalServerError, "misc/500.html", nil)
	c.Abort()
}

// Forbidden renders the CSRF failure page
func Forbidden(c *gin.Context) {
	HTML(c, http.StatusForbidden, "misc/403csrf.html", nil)
	c.Abort()
}
