package domain

import "time"

// Account is a login held by the built-in identity provider.
type Account struct {
	ID               string
	Email            string // lower-cased
	PasswordHash     string // argon2 encoded
	FullName         string
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
}
