package domain

import "time"

// User represents a registered user of the system
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string

	// PasswordHash bcrypt-хеш пароля, наружу не отдается
	PasswordHash string

	CreatedAt time.Time
}
