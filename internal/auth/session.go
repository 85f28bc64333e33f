// Package auth issues and verifies the signed cookie that carries an admin session.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "admin_session"
	RoleAdmin  = "admin"
)

var ErrNoSession = errors.New("no session")

type Session struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions signs and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secureCookies bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secureCookies}
}

func (s *Sessions) Issue(subject, role string) (string, error) {
	now := time.Now()
	c := &claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (s *Sessions) Parse(token string) (*Session, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &Session{Subject: c.Subject, Role: c.Role, ExpiresAt: c.ExpiresAt.Time}, nil
}

// FromRequest reads the session cookie. A missing or invalid cookie yields ErrNoSession.
func (s *Sessions) FromRequest(r *http.Request) (*Session, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil, ErrNoSession
	}
	sess, err := s.Parse(ck.Value)
	if err != nil {
		return nil, errors.Join(ErrNoSession, err)
	}
	return sess, nil
}

func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
