package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User models an account in users.json. Password holds the cipher-encrypted
// password as persisted; it must never leave the server in a response, so
// every outbound path goes through Sanitized first.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	StoreID   string    `json:"storeId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe for response bodies and session payloads.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Session is the decrypted content of the session cookie.
type Session struct {
	SID       string    `json:"sid"`
	User      User      `json:"user"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session payload is past its embedded expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
