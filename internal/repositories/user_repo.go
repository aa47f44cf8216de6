package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// UserRepository persists the whole user collection as one pretty-printed
// JSON file. It loads once at construction and rewrites the file on every
// mutation; there is exactly one writer in the process.
type UserRepository struct {
	path  string
	users []*models.User
}

func NewUserRepository(path string) (*UserRepository, error) {
	r := &UserRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	utils.LogEvent("users", "load", fmt.Sprintf("count=%d path=%s", len(r.users), path))
	return r, nil
}

func (r *UserRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.users = []*models.User{}
			return nil
		}
		return fmt.Errorf("read users file: %w", err)
	}
	var users []*models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return fmt.Errorf("decode users file: %w", err)
	}
	r.users = users
	return nil
}

// Save rewrites the whole collection. Callers treat a failed save as the
// operation not being durably completed.
func (r *UserRepository) Save() error {
	raw, err := json.MarshalIndent(r.users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range r.users {
		if strings.EqualFold(strings.TrimSpace(u.Email), email) {
			return u, true
		}
	}
	return nil, false
}

func (r *UserRepository) FindByID(id string) (*models.User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (r *UserRepository) IsRegistered(email string) bool {
	_, ok := r.FindByEmail(email)
	return ok
}

func (r *UserRepository) Add(u *models.User) error {
	r.users = append(r.users, u)
	return r.Save()
}

// Update replaces the stored record matching the user's id and persists.
func (r *UserRepository) Update(u *models.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u
			return r.Save()
		}
	}
	return fmt.Errorf("user %s not found", u.ID)
}

func (r *UserRepository) Users() []*models.User {
	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out
}
