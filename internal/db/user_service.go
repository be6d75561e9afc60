package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

// SignIn checks the password against the stored bcrypt hash
func (d *Database) SignIn(ctx context.Context, email, password string) (models.User, error) {
	email = gateway.NormalizeEmail(email)

	var account models.Account
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, gateway.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.User{}, gateway.ErrInvalidCredentials
	}
	return account.User(), nil
}

// SignUp creates an account
func (d *Database) SignUp(ctx context.Context, email, password string) (models.User, error) {
	if err := gateway.ValidateCredentials(email, password); err != nil {
		return models.User{}, err
	}
	email = gateway.NormalizeEmail(email)

	var existing int64
	if err := d.db.WithContext(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if existing > 0 {
		return models.User{}, gateway.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := d.db.WithContext(ctx).Create(&account).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return models.User{}, gateway.ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create account: %w", err)
	}
	return account.User(), nil
}

// SignOut has no server session to invalidate locally
func (d *Database) SignOut(ctx context.Context, user models.User) error {
	return nil
}
