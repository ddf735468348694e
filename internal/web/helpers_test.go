package web

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ecofinds-be/internal/middleware"
	"ecofinds-be/internal/session"
	"ecofinds-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func newHandler() (*Handler, *MockUserService, *MockProductService, *MockCartService, *MockOrderService, *MockSaver) {
	users := new(MockUserService)
	products := new(MockProductService)
	carts := new(MockCartService)
	orders := new(MockOrderService)
	uploads := new(MockSaver)
	return NewHandler(users, products, carts, orders, uploads), users, products, carts, orders, uploads
}

// withSession attaches the session and, for logged-in sessions, the
// user identity the same way the middleware chain would.
func withSession(r *http.Request, sess *session.Session) *http.Request {
	ctx := middleware.WithSession(r.Context(), sess)
	ctx = utils.SetSessionID(ctx, sess.ID)
	if sess.UserID != nil {
		ctx = utils.SetUserContext(ctx, *sess.UserID, "")
	}
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func formRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func multipartRequestWithFile(t *testing.T, target string, fields map[string]string, fileField, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write file content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
