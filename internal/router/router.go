// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qaboard-dev/qaboard/internal/handler"
	mw "github.com/qaboard-dev/qaboard/internal/middleware"
	"github.com/qaboard-dev/qaboard/internal/middleware/metrics"
)

func New(h *handler.Handler, auth *mw.Auth, staticPath string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(auth.OptionalAuth())

	r.Get("/", h.Home)
	r.Get("/home", h.Home)

	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)

	r.Get("/ask", h.AskForm)

	r.Route("/questions", func(r chi.Router) {
		r.Post("/", h.CreateQuestion)
		r.Get("/order/{order}/{direction}/{page}", h.OrderFeed)
		r.Post("/filter/{label}", h.FilterByLabel)
		r.Get("/{question}", h.ShowQuestion)
		r.Post("/{question}/replies", h.CreateReply)
		r.Post("/{question}/like", h.Like)
		r.Post("/{question}/dislike", h.Dislike)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.LoginAPI)
		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())
			r.Post("/questions", h.CreateQuestionAPI)
			r.Post("/questions/{question}/replies", h.CreateReplyAPI)
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath)))
	r.Handle("/static/*", fileServer)

	return r
}
