package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bpo-website/internal/handlers"
	"bpo-website/internal/middleware"
	"bpo-website/internal/pages"
	"bpo-website/internal/websocket"
)

// New builds the site's route tree. The returned stop function ends the
// rate limiters' cleanup goroutines.
func New(
	log *zap.Logger,
	jwtAuth *middleware.JWTAuth,
	pageHandler *pages.Handler,
	contentHandler *handlers.ContentHandler,
	leadHandler *handlers.LeadHandler,
	submissionHandler *handlers.SubmissionHandler,
	enrollmentHandler *handlers.EnrollmentHandler,
	chatHandler *handlers.ChatHandler,
	authHandler *handlers.AuthHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) (http.Handler, func()) {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	// Form limiter (10 req/min per IP), chat limiter (20 req/min per IP)
	formLimiter := middleware.NewRateLimiter(10, time.Minute)
	chatLimiter := middleware.NewRateLimiter(20, time.Minute)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	stop := func() {
		formLimiter.Stop()
		chatLimiter.Stop()
		authLimiter.Stop()
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/static/*", pages.StaticHandler())

	// ──── Pages ────
	r.Get("/", pageHandler.Home)
	r.Get("/services", pageHandler.Services)
	r.Get("/case-studies", pageHandler.CaseStudies)
	r.Get("/case-studies/{slug}", pageHandler.CaseStudy)
	r.Get("/insights", pageHandler.Insights)
	r.Get("/careers", pageHandler.Careers)
	r.Get("/training", pageHandler.Training)
	r.Get("/about", pageHandler.About)
	r.Get("/contact", pageHandler.Contact)
	r.NotFound(pageHandler.NotFound)

	r.Route("/api", func(r chi.Router) {

		// ──── Content Routes (public) ────
		r.Get("/training-programs", contentHandler.TrainingPrograms)
		r.Get("/insights", contentHandler.Insights)
		r.Get("/impact-story", contentHandler.ImpactStory)
		r.Get("/site-settings", contentHandler.SiteSettings)

		// ──── Form Routes ────
		r.Group(func(r chi.Router) {
			r.Use(formLimiter.Middleware)
			r.Post("/leads", leadHandler.Submit)
			r.Post("/partnerships", submissionHandler.Partnership)
			r.Post("/job-applications", submissionHandler.JobApplication)
			r.Post("/enrollments", enrollmentHandler.Create)
		})

		// ──── Chat ────
		r.With(chatLimiter.Middleware).Post("/chat", chatHandler.Reply)

		// ──── Operator Routes ────
		r.With(authLimiter.Middleware).Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/enrollments", enrollmentHandler.List)
		})

		// ──── WebSocket ────
		r.Get("/ws/leads", wsHub.HandleWebSocket)
	})

	return r, stop
}
