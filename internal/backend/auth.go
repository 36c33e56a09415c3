package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/ports"
)

// ErrAuthFailed is returned when the backend rejects the credentials or the
// login response carries no usable identity.
var ErrAuthFailed = errors.New("authentication failed")

// LoginResponse is the backend's answer to POST /login. The contract for
// success is the presence of user.id; message and token are informational.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts credentials to /login. It is the only call that never carries
// an Authorization header.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	resp, err := doJSON[LoginResponse](c, ctx, http.MethodPost, "/login", "", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	return resp, nil
}

// PasswordAuthenticator authenticates against the backend's login endpoint.
type PasswordAuthenticator struct {
	client *Client
}

var _ ports.Authenticator = (*PasswordAuthenticator)(nil)

// NewPasswordAuthenticator wraps a backend client as an Authenticator.
func NewPasswordAuthenticator(client *Client) *PasswordAuthenticator {
	return &PasswordAuthenticator{client: client}
}

// Authenticate logs in and maps the response to a domain identity. A login
// response without user.id is an authentication failure even on HTTP 200.
// Backend 401/403 surface as ErrAuthFailed rather than a page error.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, password string) (domainauth.Identity, error) {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return domainauth.Identity{}, ErrAuthFailed
		}
		return domainauth.Identity{}, err
	}

	if resp.User.ID == 0 {
		return domainauth.Identity{}, ErrAuthFailed
	}

	role, err := domainauth.ParseRole(resp.User.Role)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("login response: %w", err)
	}

	// Some backend builds omit the token; sessions still need an opaque,
	// non-empty credential to key requests on.
	credential := resp.Token
	if credential == "" {
		credential = uuid.New().String()
	}

	return domainauth.Identity{
		User:       domainauth.User{ID: resp.User.ID, Username: resp.User.Username},
		Role:       role,
		Credential: credential,
	}, nil
}
