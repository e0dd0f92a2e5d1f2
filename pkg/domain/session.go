package domain

import "time"

// SessionStorageKey is the single namespaced key the current-user
// record lives under for the lifetime of a session.
const SessionStorageKey = "cloudnest_user"

type User struct {
	Email string `json:"email"`
}

// Session is the explicit session object handed to page controllers.
// It is created at login or signup and destroyed at logout.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}
