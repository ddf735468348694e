package session

import (
	"context"
	"errors"

	"ecofinds-be/internal/cart"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Session is the per-browser state: who is logged in, what sits in the
// cart, and any flash notices waiting for the next page.
type Session struct {
	ID      string    `json:"id"`
	UserID  *uint     `json:"user_id,omitempty"`
	Cart    cart.Cart `json:"cart"`
	Flashes []string  `json:"flashes,omitempty"`
}

// New returns a fresh anonymous session.
func New() *Session {
	return &Session{ID: uuid.New().String()}
}

// Authenticated reports whether an identity is attached.
func (s *Session) Authenticated() bool {
	return s.UserID != nil
}

// Login attaches an identity to the session.
func (s *Session) Login(userID uint) {
	s.UserID = &userID
}

// Logout detaches the identity. Calling it on an anonymous session is
// fine.
func (s *Session) Logout() {
	s.UserID = nil
}

// Flash queues a one-shot notice for the next rendered page.
func (s *Session) Flash(message string) {
	s.Flashes = append(s.Flashes, message)
}

// DrainFlashes returns the queued notices and clears them.
func (s *Session) DrainFlashes() []string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Store persists sessions between requests.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}
