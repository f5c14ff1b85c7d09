package models

// User is an authenticated account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
