package middleware

import (
	"context"
	"net/http"
	"time"

	"ecofinds-be/internal/logger"
	"ecofinds-be/internal/session"
	"ecofinds-be/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionManager resolves the browser cookie to server-side session
// state and persists whatever the handlers changed.
type SessionManager struct {
	store  session.Store
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(store session.Store, secret []byte, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, secret: secret, ttl: ttl}
}

// Middleware attaches a session to every request. A missing, invalid or
// expired cookie silently gets a fresh anonymous session. The session is
// saved back to the store after the handler runs, so handlers mutate the
// in-context session and nothing else.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.resolve(r)

		ctx := WithSession(r.Context(), sess)
		ctx = utils.SetSessionID(ctx, sess.ID)
		if sess.UserID != nil {
			ctx = utils.SetUserContext(ctx, *sess.UserID, "")
		}

		m.setCookie(w, sess)

		next.ServeHTTP(w, r.WithContext(ctx))

		if err := m.store.Save(r.Context(), sess); err != nil {
			logger.FromCtx(r.Context()).Error("failed to save session",
				zap.String("session_id", sess.ID),
				zap.Error(err),
			)
		}
	})
}

func (m *SessionManager) resolve(r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return session.New()
	}

	sessionID, err := session.ParseToken(cookie.Value, m.secret)
	if err != nil {
		return session.New()
	}

	sess, err := m.store.Get(r.Context(), sessionID)
	if err != nil {
		return session.New()
	}

	return sess
}

func (m *SessionManager) setCookie(w http.ResponseWriter, sess *session.Session) {
	token, err := session.SignToken(sess.ID, m.secret, m.ttl)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the request's session. The session
// middleware guarantees one on every routed request.
func SessionFromContext(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return s
	}
	return session.New()
}
