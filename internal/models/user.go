package models

import (
	"net/mail"
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns goals and finances.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex:user_email"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrUserEmailInvalid
	}

	return nil
}
