package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        authUser `json:"user"`
}

// SignIn exchanges email and password for a session
func (c *Client) SignIn(ctx context.Context, email, password string) (models.User, error) {
	var token tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", nil,
		credentials{Email: gateway.NormalizeEmail(email), Password: password}, &token)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return models.User{}, gateway.ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}
	if token.User.ID == "" || token.AccessToken == "" {
		return models.User{}, gateway.ErrInvalidCredentials
	}

	return models.User{ID: token.User.ID, Email: token.User.Email, AccessToken: token.AccessToken}, nil
}

// signUpResponse is a session when email confirmation is off, a bare user otherwise
type signUpResponse struct {
	tokenResponse
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignUp registers a new account
func (c *Client) SignUp(ctx context.Context, email, password string) (models.User, error) {
	if err := gateway.ValidateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	var resp signUpResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", nil,
		credentials{Email: gateway.NormalizeEmail(email), Password: password}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.Code == "user_already_exists" || apiErr.Code == "email_exists" || apiErr.Status == http.StatusUnprocessableEntity:
				return models.User{}, gateway.ErrEmailTaken
			case apiErr.Code == "weak_password":
				return models.User{}, gateway.ErrWeakPassword
			}
		}
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}

	if resp.User.ID != "" {
		return models.User{ID: resp.User.ID, Email: resp.User.Email, AccessToken: resp.AccessToken}, nil
	}
	return models.User{ID: resp.ID, Email: resp.Email}, nil
}

// SignOut revokes the session on the server
func (c *Client) SignOut(ctx context.Context, user models.User) error {
	if user.AccessToken == "" {
		return nil
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", user.AccessToken, nil, nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
