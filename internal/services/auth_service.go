package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and the persisted session
// token. Passwords are bcrypt-hashed; the session is a signed JWT written
// to a local file so a restarted process can resume it.
type AuthService struct {
	Users       *repositories.UserRepository
	SessionFile string
	Secret      []byte
}

func (s AuthService) Register(email, name, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, fmt.Errorf("email and name are required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if s.Users.IsRegistered(email) {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := models.NewUser(NewShortID(), name, email, string(hash))
	if err != nil {
		return nil, err
	}
	if err := s.Users.Add(user); err != nil {
		return nil, err
	}
	utils.LogEvent("auth", "register", "user="+user.ID)
	return user, nil
}

func (s AuthService) Login(email, password string) (*models.User, error) {
	user, ok := s.Users.FindByEmail(email)
	if !ok {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	utils.LogEvent("auth", "login", "user="+user.ID)
	return user, nil
}

func (s AuthService) IsRegistered(email string) bool {
	return s.Users.IsRegistered(email)
}

// SaveSession writes a signed token so the next run can skip the login
// prompt. Best effort; booking never depends on it.
func (s AuthService) SaveSession(user *models.User) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	if err := os.WriteFile(s.SessionFile, []byte(signed), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Resume validates the stored session token and returns its user.
func (s AuthService) Resume() (*models.User, error) {
	raw, err := os.ReadFile(s.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("no saved session: %w", err)
	}
	token, err := jwt.Parse(strings.TrimSpace(string(raw)), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("session token invalid: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("session token claims malformed")
	}
	id, _ := claims["user_id"].(string)
	user, found := s.Users.FindByID(id)
	if !found {
		return nil, fmt.Errorf("session user %s no longer exists", id)
	}
	utils.LogEvent("auth", "resume", "user="+user.ID)
	return user, nil
}

func (s AuthService) ClearSession() {
	if err := os.Remove(s.SessionFile); err != nil && !os.IsNotExist(err) {
		utils.LogError("auth", "clear_session", err)
	}
}
