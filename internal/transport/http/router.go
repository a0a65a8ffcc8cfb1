package http

import (
	"net/http"

	"github.com/Kush146/note-app-Backend/internal/application/auth"
	"github.com/Kush146/note-app-Backend/internal/application/note"
	"github.com/Kush146/note-app-Backend/internal/config"
	"github.com/Kush146/note-app-Backend/internal/transport/http/handler"
	appmiddleware "github.com/Kush146/note-app-Backend/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		PasscodeRepo: deps.PasscodeRepo,
		Mailer:       deps.Mailer,
		Google:       deps.Google,
		JWTProvider:  deps.JWTProvider,
		OTPExpiry:    cfg.OTPExpiry,
	})
	noteSvc := note.NewService(deps.NoteRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	googleH := handler.NewGoogleHandler(authSvc, cfg.ClientAppURL)
	noteH := handler.NewNoteHandler(noteSvc)

	authMw := appmiddleware.Auth(deps.JWTProvider)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.Post("/auth/send-otp", authH.SendOTP)
		r.Post("/auth/verify-otp", authH.VerifyOTP)
		r.Get("/auth/google", googleH.Login)
		r.Get("/auth/google/callback", googleH.Callback)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/notes", noteH.List)
			r.Post("/notes", noteH.Create)
			r.Put("/notes/{id}", noteH.Update)
			r.Delete("/notes/{id}", noteH.Delete)
		})
	})

	return r
}
