package user

import "time"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileParams carries only the fields the caller wants to
// change. Nil fields keep their stored value.
type UpdateProfileParams struct {
	UserID   uint
	Username *string
	Email    *string
	Image    *string
}
