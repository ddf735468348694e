package web

import (
	"errors"
	"net/http"

	"ecofinds-be/internal/middleware"
	"ecofinds-be/internal/user"
	"ecofinds-be/internal/utils"
)

// SignupPage renders the signup form.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	respondPage(w, r, http.StatusOK, map[string]string{"page": "signup"})
}

// Signup creates an account and logs the new user in.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/signup", "Invalid form submission")
		return
	}

	u, err := h.users.Signup(
		r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	switch {
	case errors.Is(err, user.ErrMissingFields):
		redirectWithFlash(w, r, "/signup", "Email and password are required")
		return
	case errors.Is(err, user.ErrEmailExists):
		redirectWithFlash(w, r, "/signup", "That email is already registered")
		return
	case err != nil:
		redirectWithFlash(w, r, "/signup", "Something went wrong, please try again")
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	sess.Login(u.ID)

	redirectWithFlash(w, r, "/", "Welcome to EcoFinds!")
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	respondPage(w, r, http.StatusOK, map[string]string{"page": "login"})
}

// Login authenticates the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/login", "Invalid form submission")
		return
	}

	u, err := h.users.Login(
		r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		redirectWithFlash(w, r, "/login", "Invalid credentials")
		return
	case err != nil:
		redirectWithFlash(w, r, "/login", "Something went wrong, please try again")
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	sess.Login(u.ID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout drops the session identity. Safe to call repeatedly.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	sess.Logout()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dashboard renders the logged-in user's profile.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		redirectWithFlash(w, r, "/", "Something went wrong, please try again")
		return
	}

	respondPage(w, r, http.StatusOK, u)
}

// UpdateProfile edits username/email/profile image. An uploaded file of
// an allowed type wins over the image URL field.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		redirectWithFlash(w, r, "/dashboard", "Invalid form submission")
		return
	}

	params := user.UpdateProfileParams{UserID: userID}
	if r.PostForm.Has("username") {
		params.Username = utils.StrPtr(r.PostFormValue("username"))
	}
	if r.PostForm.Has("email") {
		params.Email = utils.StrPtr(r.PostFormValue("email"))
	}

	if image := h.saveUploadedImage(r, "image_file"); image != "" {
		params.Image = &image
	} else if r.PostForm.Has("image_url") {
		params.Image = utils.StrPtr(r.PostFormValue("image_url"))
	}

	_, err := h.users.UpdateProfile(r.Context(), params)
	switch {
	case errors.Is(err, user.ErrEmailExists):
		redirectWithFlash(w, r, "/dashboard", "That email is already registered")
		return
	case err != nil:
		redirectWithFlash(w, r, "/dashboard", "Something went wrong, please try again")
		return
	}

	redirectWithFlash(w, r, "/dashboard", "Profile updated")
}

// saveUploadedImage stores a multipart file if one was sent and its
// type is allowed. Returns "" when there is nothing usable; the caller
// then falls back to the URL field.
func (h *Handler) saveUploadedImage(r *http.Request, field string) string {
	file, header, err := r.FormFile(field)
	if err != nil {
		return ""
	}
	defer file.Close()

	if !h.uploads.Allowed(header.Filename) {
		return ""
	}

	path, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		return ""
	}

	return path
}
