package web

import (
	"net/http"

	"ecofinds-be/internal/logger"
	"ecofinds-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full HTTP surface. uploadDir is served read-only
// so pages can reference stored images by path.
func NewRouter(h *Handler, sessions *middleware.SessionManager, uploadDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	// Sessions resolve before the limiter so logged-in users get rated
	// by identity, not by shared IP.
	r.Use(sessions.Middleware)
	r.Use(middleware.RateLimitMiddleware)

	// Public pages
	r.Get("/", h.Index)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.Signup)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/product/{id}", h.ProductDetail)
	r.Post("/cart/add/{id}", h.AddToCart)
	r.Get("/cart", h.ViewCart)
	r.Post("/cart/remove/{index}", h.RemoveFromCart)

	// Pages that need a logged-in user
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/logout", h.Logout)
		r.Get("/dashboard", h.Dashboard)
		r.Post("/dashboard", h.UpdateProfile)
		r.Get("/add", h.AddListingPage)
		r.Post("/add", h.AddListing)
		r.Get("/my-listings", h.MyListings)
		r.Post("/listing/{id}/update", h.UpdateListing)
		r.Post("/listing/{id}/delete", h.DeleteListing)
		r.Post("/checkout", h.Checkout)
		r.Get("/previous", h.PreviousPurchases)
	})

	r.Handle("/static/uploads/*", http.StripPrefix("/static/uploads/",
		http.FileServer(http.Dir(uploadDir))))

	r.NotFound(h.NotFound)

	return r
}
