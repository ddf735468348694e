package web

import (
	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/order"
	"ecofinds-be/internal/product"
	"ecofinds-be/internal/upload"
	"ecofinds-be/internal/user"
)

// Handler is the front controller: it binds form input, calls the
// domain services, and turns their errors into notices and redirects.
type Handler struct {
	users    user.Service
	products product.Service
	carts    cart.Service
	orders   order.Service
	uploads  upload.Saver
}

func NewHandler(
	users user.Service,
	products product.Service,
	carts cart.Service,
	orders order.Service,
	uploads upload.Saver,
) *Handler {
	return &Handler{
		users:    users,
		products: products,
		carts:    carts,
		orders:   orders,
		uploads:  uploads,
	}
}

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 10 << 20 // 10 MB
