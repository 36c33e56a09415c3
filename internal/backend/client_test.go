package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	assert.ErrorContains(t, err, "base URL is required")
}

func TestDoRequest_AuthorizationHeaderMatchesCredential(t *testing.T) {
	var gotAuth string
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))

	// With a credential: bearer header present.
	_, err := client.ListBooks(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/books", gotPath)

	// Without a credential: no header at all.
	_, err = client.ListBooks(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLogin_NeverSendsAuthorization(t *testing.T) {
	var gotAuth *string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		gotAuth = &auth
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"message":"ok","user":{"id":5,"username":"alice","role":"USER"}}`))
	}))

	resp, err := client.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.NotNil(t, gotAuth)
	assert.Empty(t, *gotAuth)
	assert.Equal(t, 5, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestDoRequest_ErrorsCarryStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("book is already borrowed"))
	}))

	_, err := client.CreateTransaction(context.Background(), "tok", model.Transaction{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "book is already borrowed", apiErr.Body)
}

func TestIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetBook(context.Background(), "tok", 99)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}

func TestDeleteBook_EmptyResponseBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/books/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, client.DeleteBook(context.Background(), "tok", 3))
}

func TestTransactions_UseBorrowingTransactionsPath(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"id":4,"book":{"id":1},"user":{"id":2},"borrowDate":"2024-01-02","returnDate":"2024-01-09","status":"Borrowed"}`))
	}))

	txn, err := client.UpdateTransaction(context.Background(), "tok", model.Transaction{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, "/borrowing-transactions/4", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, model.StatusBorrowed, txn.Status)
	assert.Equal(t, "2024-01-02", txn.BorrowDate.String())
}

func TestPasswordAuthenticator(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		expectErr  error
		expectUser domainauth.User
		expectRole domainauth.Role
	}{
		{
			name:       "success with token",
			status:     http.StatusOK,
			body:       `{"message":"welcome","token":"tok-1","user":{"id":7,"username":"bob","role":"ADMIN"}}`,
			expectUser: domainauth.User{ID: 7, Username: "bob"},
			expectRole: domainauth.RoleAdmin,
		},
		{
			name:      "missing user id means failure even on 200",
			status:    http.StatusOK,
			body:      `{"message":"Invalid username or password"}`,
			expectErr: ErrAuthFailed,
		},
		{
			name:      "backend 401",
			status:    http.StatusUnauthorized,
			body:      `{"message":"bad credentials"}`,
			expectErr: ErrAuthFailed,
		},
		{
			name:      "backend 403",
			status:    http.StatusForbidden,
			body:      `{"message":"locked"}`,
			expectErr: ErrAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			id, err := NewPasswordAuthenticator(client).Authenticate(context.Background(), "u", "p")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectUser, id.User)
			assert.Equal(t, tt.expectRole, id.Role)
			assert.Equal(t, "tok-1", id.Credential)
		})
	}
}

func TestPasswordAuthenticator_TokenlessResponseGetsOpaqueCredential(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","user":{"id":2,"username":"carol","role":"USER"}}`))
	}))

	id, err := NewPasswordAuthenticator(client).Authenticate(context.Background(), "carol", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, id.Credential)
}

func TestPasswordAuthenticator_RejectsUnknownRole(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","user":{"id":2,"username":"carol","role":"LIBRARIAN"}}`))
	}))

	_, err := NewPasswordAuthenticator(client).Authenticate(context.Background(), "carol", "pw")
	assert.ErrorContains(t, err, "unknown role")
}
