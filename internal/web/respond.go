package web

import (
	"encoding/json"
	"net/http"

	"ecofinds-be/internal/logger"
	"ecofinds-be/internal/middleware"

	"go.uber.org/zap"
)

// page is the envelope every rendered page shares: the payload plus any
// flash notices queued since the last render.
type page struct {
	Flashes []string `json:"flashes,omitempty"`
	Data    any      `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Error("failed to write response", zap.Error(err))
	}
}

// respondPage renders a page payload, draining the session's flash
// notices into it.
func respondPage(w http.ResponseWriter, r *http.Request, code int, data any) {
	sess := middleware.SessionFromContext(r.Context())
	respondJSON(w, code, page{
		Flashes: sess.DrainFlashes(),
		Data:    data,
	})
}

// redirectWithFlash queues a one-shot notice and sends the browser to
// target. Used for every user-correctable failure and most successes:
// the process never hard-fails on bad input.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	sess := middleware.SessionFromContext(r.Context())
	sess.Flash(message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
