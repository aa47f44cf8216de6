package services

import (
	"errors"
	"path/filepath"
	"testing"

	"railbook/internal/repositories"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	dir := t.TempDir()
	users, err := repositories.NewUserRepository(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("users repo: %v", err)
	}
	return AuthService{
		Users:       users,
		SessionFile: filepath.Join(dir, "session.jwt"),
		Secret:      []byte("test-secret"),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthFixture(t)

	user, err := auth.Register("asha@example.com", "Asha", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("password stored in plain text")
	}
	if len(user.ID) != 4 {
		t.Fatalf("expected 4-char user id, got %q", user.ID)
	}

	got, err := auth.Login("ASHA@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login returned wrong user")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth := newAuthFixture(t)
	if _, err := auth.Register("asha@example.com", "Asha", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := auth.Register("asha@example.com", "Imposter", "other"); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	auth := newAuthFixture(t)
	auth.Register("asha@example.com", "Asha", "s3cret")

	if _, err := auth.Login("asha@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := auth.Login("nobody@example.com", "s3cret"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	auth := newAuthFixture(t)
	user, _ := auth.Register("asha@example.com", "Asha", "s3cret")

	if err := auth.SaveSession(user); err != nil {
		t.Fatalf("save session: %v", err)
	}
	resumed, err := auth.Resume()
	if err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if resumed.ID != user.ID {
		t.Fatalf("resumed wrong user: %s", resumed.ID)
	}

	auth.ClearSession()
	if _, err := auth.Resume(); err == nil {
		t.Fatalf("expected resume to fail after ClearSession")
	}
}

func TestResumeRejectsTamperedToken(t *testing.T) {
	auth := newAuthFixture(t)
	user, _ := auth.Register("asha@example.com", "Asha", "s3cret")
	auth.SaveSession(user)

	forged := auth
	forged.Secret = []byte("other-secret")
	if _, err := forged.Resume(); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}
