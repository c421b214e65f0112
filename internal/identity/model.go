package identity

import "time"

// User represents a registered vault owner. The id is assigned by the store
// at creation and immutable afterwards; the PIN is stored only as a salted
// bcrypt hash.
type User struct {
	ID        int64
	Username  string
	PINHash   string
	CreatedAt time.Time
}

// Credentials carries a login attempt.
type Credentials struct {
	Username string
	PIN      string
}
