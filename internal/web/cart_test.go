package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/order"
	"ecofinds-be/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartHandler(t *testing.T) {
	t.Run("AppendsToSessionCart", func(t *testing.T) {
		h, _, _, carts, _, _ := newHandler()

		updated := cart.Cart{}.Add(cart.Entry{
			ProductID: 5,
			Title:     "Desk Lamp",
			Price:     decimal.NewFromFloat(9.5),
		})
		carts.On("AddToCart", mock.Anything, cart.Cart{}, uint(5)).
			Return(updated, nil)

		sess := session.New()
		req := withSession(httptest.NewRequest(http.MethodPost, "/cart/add/5", nil), sess)
		req = withURLParam(req, "id", "5")
		rec := httptest.NewRecorder()

		h.AddToCart(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		require.Equal(t, 1, sess.Cart.Len())
		assert.Equal(t, "Desk Lamp", sess.Cart.Entries[0].Title)
		assert.Contains(t, sess.Flashes, "Added to cart")
	})

	t.Run("MissingProduct", func(t *testing.T) {
		h, _, _, carts, _, _ := newHandler()
		carts.On("AddToCart", mock.Anything, cart.Cart{}, uint(404)).
			Return(cart.Cart{}, cart.ErrProductNotFound)

		sess := session.New()
		req := withSession(httptest.NewRequest(http.MethodPost, "/cart/add/404", nil), sess)
		req = withURLParam(req, "id", "404")
		rec := httptest.NewRecorder()

		h.AddToCart(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, sess.Flashes, "That listing no longer exists")
		assert.True(t, sess.Cart.IsEmpty())
	})
}

func TestViewCart(t *testing.T) {
	h, _, _, _, _, _ := newHandler()

	sess := session.New()
	sess.Cart = sess.Cart.
		Add(cart.Entry{ProductID: 1, Title: "Desk Lamp", Price: decimal.NewFromFloat(9.5)}).
		Add(cart.Entry{ProductID: 2, Title: "Old Bike", Price: decimal.NewFromInt(6)})

	req := withSession(httptest.NewRequest(http.MethodGet, "/cart", nil), sess)
	rec := httptest.NewRecorder()

	h.ViewCart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk Lamp")
	assert.Contains(t, rec.Body.String(), "15.5")
}

func TestRemoveFromCartHandler(t *testing.T) {
	t.Run("RemovesByIndex", func(t *testing.T) {
		h, _, _, _, _, _ := newHandler()

		sess := session.New()
		sess.Cart = sess.Cart.
			Add(cart.Entry{ProductID: 1, Title: "Desk Lamp"}).
			Add(cart.Entry{ProductID: 2, Title: "Old Bike"})

		req := withSession(httptest.NewRequest(http.MethodPost, "/cart/remove/0", nil), sess)
		req = withURLParam(req, "index", "0")
		rec := httptest.NewRecorder()

		h.RemoveFromCart(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		require.Equal(t, 1, sess.Cart.Len())
		assert.Equal(t, "Old Bike", sess.Cart.Entries[0].Title)
	})

	t.Run("OutOfRangeIsNoOp", func(t *testing.T) {
		h, _, _, _, _, _ := newHandler()

		sess := session.New()
		sess.Cart = sess.Cart.Add(cart.Entry{ProductID: 1, Title: "Desk Lamp"})

		req := withSession(httptest.NewRequest(http.MethodPost, "/cart/remove/7", nil), sess)
		req = withURLParam(req, "index", "7")
		rec := httptest.NewRecorder()

		h.RemoveFromCart(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 1, sess.Cart.Len())
	})

	t.Run("UnparsableIndexIsNoOp", func(t *testing.T) {
		h, _, _, _, _, _ := newHandler()

		sess := session.New()
		sess.Cart = sess.Cart.Add(cart.Entry{ProductID: 1, Title: "Desk Lamp"})

		req := withSession(httptest.NewRequest(http.MethodPost, "/cart/remove/abc", nil), sess)
		req = withURLParam(req, "index", "abc")
		rec := httptest.NewRecorder()

		h.RemoveFromCart(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 1, sess.Cart.Len())
	})
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("ClearsCartOnSuccess", func(t *testing.T) {
		h, _, _, _, orders, _ := newHandler()

		filled := cart.Cart{}.Add(cart.Entry{ProductID: 1, Title: "Desk Lamp", Price: decimal.NewFromFloat(9.5)})
		orders.On("Checkout", mock.Anything, uint(9), filled).
			Return(uint(3), nil)

		sess := session.New()
		sess.Login(9)
		sess.Cart = filled

		req := withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess)
		rec := httptest.NewRecorder()

		h.Checkout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/previous", rec.Header().Get("Location"))
		assert.True(t, sess.Cart.IsEmpty())
		assert.Contains(t, sess.Flashes, "Order placed, happy reusing!")
		orders.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		h, _, _, _, orders, _ := newHandler()
		orders.On("Checkout", mock.Anything, uint(9), cart.Cart{}).
			Return(uint(0), order.ErrEmptyCart)

		sess := session.New()
		sess.Login(9)

		req := withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess)
		rec := httptest.NewRecorder()

		h.Checkout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		assert.Contains(t, sess.Flashes, "Your cart is empty")
	})

	t.Run("ServiceErrorKeepsCart", func(t *testing.T) {
		h, _, _, _, orders, _ := newHandler()

		filled := cart.Cart{}.Add(cart.Entry{ProductID: 1, Title: "Desk Lamp", Price: decimal.NewFromFloat(9.5)})
		orders.On("Checkout", mock.Anything, uint(9), filled).
			Return(uint(0), errors.New("db down"))

		sess := session.New()
		sess.Login(9)
		sess.Cart = filled

		req := withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess)
		rec := httptest.NewRecorder()

		h.Checkout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		assert.Equal(t, 1, sess.Cart.Len())
	})
}

func TestPreviousPurchases(t *testing.T) {
	h, _, _, _, orders, _ := newHandler()
	orders.On("ListByUser", mock.Anything, uint(9)).
		Return([]order.Order{
			{
				ID:     3,
				UserID: 9,
				Total:  decimal.NewFromFloat(9.5),
				Items: []order.OrderItem{
					{ID: 1, OrderID: 3, ProductID: 1, Title: "Desk Lamp", Price: decimal.NewFromFloat(9.5)},
				},
			},
		}, nil)

	sess := session.New()
	sess.Login(9)
	req := withSession(httptest.NewRequest(http.MethodGet, "/previous", nil), sess)
	rec := httptest.NewRecorder()

	h.PreviousPurchases(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk Lamp")
}
