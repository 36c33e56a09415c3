package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/libreshelf/library-ui/internal/ports"
)

var _ ports.UserAPI = (*Client)(nil)

// ListUsers fetches all user accounts.
func (c *Client) ListUsers(ctx context.Context, credential string) ([]ports.BackendUser, error) {
	users, err := doJSON[[]ports.BackendUser](c, ctx, http.MethodGet, "/users", credential, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser fetches one user account by id.
func (c *Client) GetUser(ctx context.Context, credential string, id int) (ports.BackendUser, error) {
	user, err := doJSON[ports.BackendUser](c, ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), credential, nil)
	if err != nil {
		return ports.BackendUser{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// CreateUser adds a user account.
func (c *Client) CreateUser(ctx context.Context, credential string, user ports.BackendUser) (ports.BackendUser, error) {
	created, err := doJSON[ports.BackendUser](c, ctx, http.MethodPost, "/users", credential, user)
	if err != nil {
		return ports.BackendUser{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// UpdateUser replaces a user account.
func (c *Client) UpdateUser(ctx context.Context, credential string, user ports.BackendUser) (ports.BackendUser, error) {
	updated, err := doJSON[ports.BackendUser](c, ctx, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), credential, user)
	if err != nil {
		return ports.BackendUser{}, fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return updated, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, credential string, id int) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), credential, nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
