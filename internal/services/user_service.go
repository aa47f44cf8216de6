package services

import (
	"fmt"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService mutates the logged-in user's profile and persists each
// change immediately.
type UserService struct {
	Users *repositories.UserRepository
}

func (s UserService) UpdateName(user *models.User, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	user.Name = name
	return s.Users.Update(user)
}

func (s UserService) UpdatePhone(user *models.User, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("phone number cannot be empty")
	}
	user.PhoneNumber = phone
	return s.Users.Update(user)
}

func (s UserService) UpdateAadhaar(user *models.User, aadhaar string) error {
	aadhaar = strings.TrimSpace(aadhaar)
	if aadhaar == "" {
		return fmt.Errorf("aadhaar cannot be empty")
	}
	user.AadhaarUID = aadhaar
	return s.Users.Update(user)
}

func (s UserService) ChangePassword(user *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return fmt.Errorf("old password incorrect")
	}
	if newPassword == "" {
		return fmt.Errorf("new password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.Users.Update(user)
}
