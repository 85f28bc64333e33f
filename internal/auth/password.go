package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin account configured for the site.
type Credentials struct {
	Email        string
	PasswordHash string
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check compares trimmed emails case-insensitively and the password against the bcrypt hash.
func (c Credentials) Check(email, password string) bool {
	want := strings.ToLower(strings.TrimSpace(c.Email))
	if want == "" || c.PasswordHash == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(want),
	) == 1
	pwErr := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
	return emailOK && pwErr == nil
}
