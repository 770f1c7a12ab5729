package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riftcup/gateway/internal/backend"
)

// AuthRepository talks to the two authentication endpoints.
type AuthRepository interface {
	AdminLogin(ctx context.Context, username, password string) (*AdminSession, error)
	UserLogin(ctx context.Context, telegram, password string) (*UserSession, error)
}

type httpAuthRepository struct {
	client *backend.Client
}

// NewAuthRepository creates an AuthRepository backed by the remote endpoints.
func NewAuthRepository(client *backend.Client) AuthRepository {
	return &httpAuthRepository{client: client}
}

// AdminLogin posts credentials to the admin auth endpoint. A 401 or an
// explicit success=false maps to ErrInvalidCredentials.
func (r *httpAuthRepository) AdminLogin(ctx context.Context, username, password string) (*AdminSession, error) {
	var resp struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Token    string `json:"token"`
	}

	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.AuthURL,
		Body: map[string]string{
			"username": username,
			"password": password,
		},
	}, &resp)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("admin login: %w", err)
	}
	if !resp.Success {
		return nil, ErrInvalidCredentials
	}

	return &AdminSession{
		Username: resp.Username,
		Role:     resp.Role,
		Token:    resp.Token,
	}, nil
}

// UserLogin posts action=login to the user auth endpoint on behalf of a team
// captain or individual player.
func (r *httpAuthRepository) UserLogin(ctx context.Context, telegram, password string) (*UserSession, error) {
	var resp struct {
		Success     bool   `json:"success"`
		Token       string `json:"token"`
		UserType    string `json:"userType"`
		TeamID      *int   `json:"teamId"`
		CaptainNick string `json:"captainNick"`
		Nickname    string `json:"nickname"`
		PlayerID    *int   `json:"playerId"`
	}

	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.UserAuthURL,
		Body: map[string]string{
			"action":   "login",
			"telegram": telegram,
			"password": password,
		},
	}, &resp)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("user login: %w", err)
	}
	if !resp.Success {
		return nil, ErrInvalidCredentials
	}

	return &UserSession{
		Token:       resp.Token,
		UserType:    resp.UserType,
		TeamID:      resp.TeamID,
		CaptainNick: resp.CaptainNick,
		Nickname:    resp.Nickname,
		PlayerID:    resp.PlayerID,
	}, nil
}
