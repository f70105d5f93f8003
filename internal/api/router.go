package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Kinimary/belwest/docs" // swagger docs
	"github.com/Kinimary/belwest/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	managers := mw.RequireRoles(entity.RoleAdmin, entity.RoleManager)
	admins := mw.RequireRoles(entity.RoleAdmin)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/permissions", func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/check", h.Check)
			r.Get("/user/{user_id}", h.UserPermissions)

			r.Group(func(r chi.Router) {
				r.Use(managers)
				r.Get("/matrix", h.Matrix)
				r.Get("/custom", h.CustomPermissions)
			})

			r.Group(func(r chi.Router) {
				r.Use(admins)
				r.Post("/custom", h.UpsertCustom)
				r.Delete("/custom/reset/{user_id}", h.ResetCustom)
				r.Delete("/custom/{user_id}/{resource}/{action}", h.DeleteCustom)
				r.Get("/audit", h.Audit)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(mw.Auth, managers)
			r.Get("/", h.Users)
		})
	})

	return mux
}
