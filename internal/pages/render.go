// Package pages renders the public marketing pages from resolved content.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"bpo-website/internal/content"
	"bpo-website/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = []string{
	"home.html",
	"services.html",
	"case_studies.html",
	"case_study.html",
	"insights.html",
	"careers.html",
	"training.html",
	"about.html",
	"contact.html",
	"not_found.html",
}

// view is the data every template receives.
type view struct {
	Title     string
	Settings  content.SiteSettings
	DevBanner bool
	Year      int
	Resume    resumeLimits
	Page      interface{}
}

// resumeLimits feeds the careers form's client-side upload checks.
type resumeLimits struct {
	MaxBytes    int64
	TypeMessage string
	SizeMessage string
}

var defaultResumeLimits = resumeLimits{
	MaxBytes:    services.MaxResumeSize,
	TypeMessage: services.MsgResumeType,
	SizeMessage: services.MsgResumeSize,
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pageTemplates)), log: log.Named("pages")}
	for _, name := range pageTemplates {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render writes the page with the given status. The page is rendered into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, v view) {
	t, ok := r.templates[name]
	if !ok {
		r.log.Error("unknown template", zap.String("template", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		r.log.Error("template execution failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// StaticHandler serves the bundled assets under /static/. Missing images
// are answered with the placeholder so sample content always has a picture.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	files := http.FileServer(http.FS(sub))

	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if _, err := fs.Stat(sub, name); err != nil && strings.HasPrefix(name, "images/") {
			w.Header().Set("Cache-Control", "public, max-age=300")
			r.URL.Path = strings.TrimPrefix(content.PlaceholderImage, "/static")
		}
		files.ServeHTTP(w, r)
	}))
}

func currentYear() int {
	return time.Now().Year()
}
