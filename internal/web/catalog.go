package web

import (
	"errors"
	"net/http"

	"ecofinds-be/internal/middleware"
	"ecofinds-be/internal/product"
	"ecofinds-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// Index is the catalog browse page with optional search and category
// filtering via the q and category query parameters.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	filter := product.ListFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	products, err := h.products.List(r.Context(), filter)
	if err != nil {
		// Redirecting to / would loop while the outage lasts; render
		// the empty catalog with the notice instead.
		sess := middleware.SessionFromContext(r.Context())
		sess.Flash("Something went wrong, please try again")
		products = []product.Product{}
	}

	respondPage(w, r, http.StatusOK, map[string]any{
		"products":   products,
		"categories": product.Categories(),
	})
}

// ProductDetail renders a single listing.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	p, err := h.products.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, product.ErrNotFound):
		h.NotFound(w, r)
		return
	case err != nil:
		redirectWithFlash(w, r, "/", "Something went wrong, please try again")
		return
	}

	respondPage(w, r, http.StatusOK, p)
}

// AddListingPage renders the new-listing form.
func (h *Handler) AddListingPage(w http.ResponseWriter, r *http.Request) {
	respondPage(w, r, http.StatusOK, map[string]any{
		"page":       "add",
		"categories": product.Categories(),
	})
}

// AddListing creates a listing owned by the logged-in user.
func (h *Handler) AddListing(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		redirectWithFlash(w, r, "/add", "Invalid form submission")
		return
	}

	image := h.saveUploadedImage(r, "image_file")
	if image == "" {
		image = r.PostFormValue("image_url")
	}

	_, err := h.products.Create(r.Context(), product.CreateInput{
		OwnerID:     userID,
		Title:       r.PostFormValue("title"),
		Category:    r.PostFormValue("category"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Image:       image,
	})
	switch {
	case errors.Is(err, product.ErrTitleRequired):
		redirectWithFlash(w, r, "/add", "Title is required")
		return
	case err != nil:
		redirectWithFlash(w, r, "/add", "Something went wrong, please try again")
		return
	}

	redirectWithFlash(w, r, "/my-listings", "Listing published")
}

// MyListings shows the logged-in user's own listings.
func (h *Handler) MyListings(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	products, err := h.products.ListByOwner(r.Context(), userID)
	if err != nil {
		redirectWithFlash(w, r, "/", "Something went wrong, please try again")
		return
	}

	respondPage(w, r, http.StatusOK, products)
}

// UpdateListing edits a listing. Only form fields actually submitted
// are applied.
func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		redirectWithFlash(w, r, "/my-listings", "Invalid form submission")
		return
	}

	input := product.UpdateInput{}
	if r.PostForm.Has("title") {
		input.Title = utils.StrPtr(r.PostFormValue("title"))
	}
	if r.PostForm.Has("category") {
		input.Category = utils.StrPtr(r.PostFormValue("category"))
	}
	if r.PostForm.Has("description") {
		input.Description = utils.StrPtr(r.PostFormValue("description"))
	}
	if r.PostForm.Has("price") {
		input.Price = utils.StrPtr(r.PostFormValue("price"))
	}
	if image := h.saveUploadedImage(r, "image_file"); image != "" {
		input.Image = &image
	} else if r.PostForm.Has("image_url") {
		input.Image = utils.StrPtr(r.PostFormValue("image_url"))
	}

	err = h.products.Update(r.Context(), id, userID, input)
	switch {
	case errors.Is(err, product.ErrNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, product.ErrForbidden):
		redirectWithFlash(w, r, "/my-listings", "You can only edit your own listings")
		return
	case errors.Is(err, product.ErrTitleRequired):
		redirectWithFlash(w, r, "/my-listings", "Title is required")
		return
	case err != nil:
		redirectWithFlash(w, r, "/my-listings", "Something went wrong, please try again")
		return
	}

	redirectWithFlash(w, r, "/my-listings", "Listing updated")
}

// DeleteListing removes a listing. Order snapshots keep their copies.
func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	err = h.products.Delete(r.Context(), id, userID)
	switch {
	case errors.Is(err, product.ErrNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, product.ErrForbidden):
		redirectWithFlash(w, r, "/my-listings", "You can only delete your own listings")
		return
	case err != nil:
		redirectWithFlash(w, r, "/my-listings", "Something went wrong, please try again")
		return
	}

	redirectWithFlash(w, r, "/my-listings", "Listing deleted")
}

// NotFound renders the not-found page for unknown resources and routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, page{
		Data: map[string]string{"page": "not-found", "message": "Nothing here"},
	})
}
