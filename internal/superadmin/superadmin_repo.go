package superadmin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/riftcup/gateway/internal/backend"
)

// AccountRepository manages admin credentials through the auth endpoint.
// Unlike the public reads elsewhere, these calls surface errors: the panel is
// super-admin-only and silent degradation would hide real failures.
type AccountRepository interface {
	ListAdmins(ctx context.Context, superAdminToken string) ([]Account, error)
	CreateAdmin(ctx context.Context, username, password, superAdminToken string) error
	DeleteAdmin(ctx context.Context, adminID int, superAdminToken string) error
}

type httpAccountRepository struct {
	client *backend.Client
}

func NewAccountRepository(client *backend.Client) AccountRepository {
	return &httpAccountRepository{client: client}
}

func (r *httpAccountRepository) ListAdmins(ctx context.Context, superAdminToken string) ([]Account, error) {
	var resp struct {
		Admins []Account `json:"admins"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.AuthURL,
		Query:  url.Values{"action": {"list_admins"}},
		Header: backend.AuthHeader(backend.HeaderAuthToken, superAdminToken),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	if resp.Admins == nil {
		return []Account{}, nil
	}
	return resp.Admins, nil
}

func (r *httpAccountRepository) CreateAdmin(ctx context.Context, username, password, superAdminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.AuthURL,
		Header: backend.AuthHeader(backend.HeaderAuthToken, superAdminToken),
		Body: map[string]string{
			"action":   "create_admin",
			"username": username,
			"password": password,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("create admin %s: %w", username, err)
	}
	return nil
}

func (r *httpAccountRepository) DeleteAdmin(ctx context.Context, adminID int, superAdminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		URL:    r.client.AuthURL,
		Header: backend.AuthHeader(backend.HeaderAuthToken, superAdminToken),
		Body: map[string]interface{}{
			"action":  "delete_admin",
			"adminId": adminID,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("delete admin %d: %w", adminID, err)
	}
	return nil
}
