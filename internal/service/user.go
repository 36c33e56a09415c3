package service

import (
	"context"
	"fmt"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/ports"
)

// UserService exposes user administration. Every operation is admin-only;
// regular users never reach these screens.
type UserService struct {
	api ports.UserAPI
}

// NewUserService builds the user service.
func NewUserService(api ports.UserAPI) *UserService {
	return &UserService{api: api}
}

func (s *UserService) requireAdmin(sess domainauth.Session, op string) error {
	if !sess.Role.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}
	return nil
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context, sess domainauth.Session) ([]ports.BackendUser, error) {
	if err := s.requireAdmin(sess, "list users"); err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx, sess.Credential)
}

// Get returns one user account.
func (s *UserService) Get(ctx context.Context, sess domainauth.Session, id int) (ports.BackendUser, error) {
	if err := s.requireAdmin(sess, "get user"); err != nil {
		return ports.BackendUser{}, err
	}
	return s.api.GetUser(ctx, sess.Credential, id)
}

// Create adds a user account.
func (s *UserService) Create(ctx context.Context, sess domainauth.Session, user ports.BackendUser) (ports.BackendUser, error) {
	if err := s.requireAdmin(sess, "create user"); err != nil {
		return ports.BackendUser{}, err
	}
	return s.api.CreateUser(ctx, sess.Credential, user)
}

// Update replaces a user account. An empty password means "leave unchanged"
// and is stripped before the call.
func (s *UserService) Update(ctx context.Context, sess domainauth.Session, user ports.BackendUser) (ports.BackendUser, error) {
	if err := s.requireAdmin(sess, "update user"); err != nil {
		return ports.BackendUser{}, err
	}
	return s.api.UpdateUser(ctx, sess.Credential, user)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, sess domainauth.Session, id int) error {
	if err := s.requireAdmin(sess, "delete user"); err != nil {
		return err
	}
	return s.api.DeleteUser(ctx, sess.Credential, id)
}
