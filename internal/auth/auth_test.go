package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate_web/internal/auth"
)

func TestSessions_IssueParse(t *testing.T) {
	s := auth.NewSessions("secret", time.Hour, false)
	tok, err := s.Issue("admin@example.cz", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	sess, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !sess.IsAdmin() || sess.Subject != "admin@example.cz" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSessions_RejectsForeignAndExpiredTokens(t *testing.T) {
	s := auth.NewSessions("secret", time.Hour, false)
	other := auth.NewSessions("other-secret", time.Hour, false)
	tok, _ := other.Issue("x", auth.RoleAdmin)
	if _, err := s.Parse(tok); err == nil {
		t.Fatalf("token signed with another secret was accepted")
	}

	expired := auth.NewSessions("secret", -time.Minute, false)
	tok, _ = expired.Issue("x", auth.RoleAdmin)
	if _, err := s.Parse(tok); err == nil {
		t.Fatalf("expired token was accepted")
	}
}

func TestSessions_FromRequest(t *testing.T) {
	s := auth.NewSessions("secret", time.Hour, false)

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if _, err := s.FromRequest(r); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}

	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	if _, err := s.FromRequest(r); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("want ErrNoSession for garbage, got %v", err)
	}

	tok, _ := s.Issue("editor", "editor")
	r = httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	sess, err := s.FromRequest(r)
	if err != nil {
		t.Fatalf("FromRequest: %v", err)
	}
	if sess.IsAdmin() {
		t.Fatalf("editor role must not be admin")
	}
}

func TestSessions_SetCookie(t *testing.T) {
	s := auth.NewSessions("secret", time.Hour, true)
	rr := httptest.NewRecorder()
	s.SetCookie(rr, "tok")
	c := rr.Result().Cookies()
	if len(c) != 1 || c[0].Name != auth.CookieName || !c[0].HttpOnly || !c[0].Secure || c[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie: %+v", c)
	}
}

func TestCredentials_Check(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	c := auth.Credentials{Email: "admin@example.cz", PasswordHash: hash}
	if !c.Check(" Admin@Example.cz ", "correct horse") {
		t.Fatalf("valid credentials rejected")
	}
	if c.Check("admin@example.cz", "wrong") {
		t.Fatalf("wrong password accepted")
	}
	if c.Check("someone@example.cz", "correct horse") {
		t.Fatalf("wrong email accepted")
	}
	padded := auth.Credentials{Email: "  Admin@Example.cz\t", PasswordHash: hash}
	if !padded.Check("admin@example.cz", "correct horse") {
		t.Fatalf("configured email with surrounding whitespace never matches")
	}
	if (auth.Credentials{Email: "   ", PasswordHash: hash}).Check("", "correct horse") {
		t.Fatalf("blank configured email accepted")
	}
	if (auth.Credentials{}).Check("", "") {
		t.Fatalf("unconfigured credentials accepted")
	}
}
