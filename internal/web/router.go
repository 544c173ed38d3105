package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/redmonkez12/community-feed/internal/auth"
	"github.com/redmonkez12/community-feed/internal/config"
	"github.com/redmonkez12/community-feed/internal/logging"
	"github.com/redmonkez12/community-feed/templates"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h *Handler, gate *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)               // Security headers on all responses
	r.Use(middleware.Recoverer)          // Recover from panics
	r.Use(middleware.RequestID)          // Add request ID
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	// Static assets from the embedded FS
	r.Handle("/static/*", http.FileServer(http.FS(templates.StaticFS)))

	// Public routes
	r.Get("/", h.Welcome)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Get("/api/ping", h.Ping)

	// Protected routes (require a live session claim)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireSession)
		r.Get("/home", h.Home)
		r.Get("/feeds", h.Feeds)
		r.Get("/api/feeds", h.FeedsAPI)
		r.Get("/profile", h.ProfileForm)
		r.Post("/profile", h.UpdateProfile)
	})

	return r
}
