package web

import (
	"errors"
	"net/http"
	"strconv"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/middleware"
	"ecofinds-be/internal/order"
	"ecofinds-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// AddToCart snapshots a product into the session cart. Adding the same
// product twice is two entries.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	sess := middleware.SessionFromContext(r.Context())

	updated, err := h.carts.AddToCart(r.Context(), sess.Cart, id)
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		redirectWithFlash(w, r, "/", "That listing no longer exists")
		return
	case err != nil:
		redirectWithFlash(w, r, "/", "Something went wrong, please try again")
		return
	}

	sess.Cart = updated
	redirectWithFlash(w, r, "/cart", "Added to cart")
}

// ViewCart renders the session cart with its running total.
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	respondPage(w, r, http.StatusOK, map[string]any{
		"entries": sess.Cart.Entries,
		"total":   sess.Cart.Total(),
	})
}

// RemoveFromCart drops the entry at the posted index. An out-of-range
// or unparsable index is a silent no-op.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	if index, err := strconv.Atoi(chi.URLParam(r, "index")); err == nil {
		sess.Cart = sess.Cart.RemoveAt(index)
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Checkout converts the cart into a persisted order and empties the
// cart.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	sess := middleware.SessionFromContext(r.Context())

	_, err := h.orders.Checkout(r.Context(), userID, sess.Cart)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		redirectWithFlash(w, r, "/cart", "Your cart is empty")
		return
	case err != nil:
		redirectWithFlash(w, r, "/cart", "Something went wrong, please try again")
		return
	}

	sess.Cart = cart.Cart{}
	redirectWithFlash(w, r, "/previous", "Order placed, happy reusing!")
}

// PreviousPurchases lists the user's orders, newest first.
func (h *Handler) PreviousPurchases(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		redirectWithFlash(w, r, "/", "Something went wrong, please try again")
		return
	}

	respondPage(w, r, http.StatusOK, orders)
}
