package pages

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bpo-website/internal/content"
)

// PageSource resolves the content of each page. *content.Resolver
// satisfies it.
type PageSource interface {
	Home(ctx context.Context) content.HomePage
	Services(ctx context.Context) content.ServicesPage
	CaseStudies(ctx context.Context) content.CaseStudiesPage
	CaseStudy(ctx context.Context, slug string) content.CaseStudyPage
	Insights(ctx context.Context, insightType string) content.InsightsPage
	Careers(ctx context.Context) content.CareersPage
	Training(ctx context.Context) content.TrainingPage
	About(ctx context.Context) content.AboutPage
	Contact(ctx context.Context) content.ContactPage
	SiteSettings(ctx context.Context) content.Resolved[content.SiteSettings]
}

type Handler struct {
	content    PageSource
	render     *Renderer
	production bool
}

// NewHandler wires page routes. In production the sample-content banner is
// never shown.
func NewHandler(src PageSource, render *Renderer, production bool) *Handler {
	return &Handler{content: src, render: render, production: production}
}

type livePage interface {
	Live() bool
}

func (h *Handler) page(w http.ResponseWriter, status int, tmpl, title string, p livePage, settings content.SiteSettings) {
	h.render.Render(w, status, tmpl, view{
		Title:     title,
		Settings:  settings,
		DevBanner: !h.production && !p.Live(),
		Year:      currentYear(),
		Resume:    defaultResumeLimits,
		Page:      p,
	})
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	p := h.content.Home(r.Context())
	h.page(w, http.StatusOK, "home.html", "Home", p, p.Settings.Value)
}

func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	p := h.content.Services(r.Context())
	h.page(w, http.StatusOK, "services.html", "Services", p, p.Settings.Value)
}

func (h *Handler) CaseStudies(w http.ResponseWriter, r *http.Request) {
	p := h.content.CaseStudies(r.Context())
	h.page(w, http.StatusOK, "case_studies.html", "Case Studies", p, p.Settings.Value)
}

func (h *Handler) CaseStudy(w http.ResponseWriter, r *http.Request) {
	p := h.content.CaseStudy(r.Context(), chi.URLParam(r, "slug"))
	if !p.Found {
		h.page(w, http.StatusNotFound, "not_found.html", "Not Found", p, p.Settings.Value)
		return
	}
	h.page(w, http.StatusOK, "case_study.html", p.CaseStudy.Value.Title, p, p.Settings.Value)
}

// Insights ignores an unknown type filter and lists everything.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	t := r.URL.Query().Get("type")
	if !content.ValidInsightType(t) {
		t = ""
	}
	p := h.content.Insights(r.Context(), t)
	h.page(w, http.StatusOK, "insights.html", "Insights", p, p.Settings.Value)
}

func (h *Handler) Careers(w http.ResponseWriter, r *http.Request) {
	p := h.content.Careers(r.Context())
	h.page(w, http.StatusOK, "careers.html", "Careers", p, p.Settings.Value)
}

func (h *Handler) Training(w http.ResponseWriter, r *http.Request) {
	p := h.content.Training(r.Context())
	h.page(w, http.StatusOK, "training.html", "Training", p, p.Settings.Value)
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	p := h.content.About(r.Context())
	h.page(w, http.StatusOK, "about.html", "About Us", p, p.Settings.Value)
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	p := h.content.Contact(r.Context())
	h.page(w, http.StatusOK, "contact.html", "Contact", p, p.Settings.Value)
}

type notFoundPage struct{}

func (notFoundPage) Live() bool { return true }

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	settings := h.content.SiteSettings(r.Context())
	h.page(w, http.StatusNotFound, "not_found.html", "Not Found", notFoundPage{}, settings.Value)
}
