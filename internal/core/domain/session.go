package domain

import "time"

// Session is a server-side assertion that a Login succeeded. The token is an
// opaque identifier handed to the client; the record itself stays in the
// session store and expires with the TTL.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity is the resolved owner of a request: a verified email, or the
// Anonymous zero value when no valid session accompanied the request.
// Absence of identity is a normal state, not an error.
type Identity struct {
	Email string
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// IsAnonymous reports whether the identity carries no verified email.
func (i Identity) IsAnonymous() bool {
	return i.Email == ""
}
