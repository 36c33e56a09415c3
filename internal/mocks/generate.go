// Package mocks provides mock implementations for testing the services that
// sit in front of the library backend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend port interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	api := mocks.NewMockTransactionAPI(ctrl)
//	api.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(txns, nil)
package mocks

// Generate mock for BookAPI interface from internal/ports.
// This creates MockBookAPI with methods for all BookAPI interface methods:
// ListBooks, GetBook, CreateBook, UpdateBook, DeleteBook
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=book_api_mock.go github.com/libreshelf/library-ui/internal/ports BookAPI

// Generate mock for TransactionAPI interface from internal/ports.
// This creates MockTransactionAPI with methods for all TransactionAPI interface methods:
// ListTransactions, GetTransaction, CreateTransaction, UpdateTransaction, DeleteTransaction
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=transaction_api_mock.go github.com/libreshelf/library-ui/internal/ports TransactionAPI

// Generate mock for UserAPI interface from internal/ports.
// This creates MockUserAPI with methods for all UserAPI interface methods:
// ListUsers, GetUser, CreateUser, UpdateUser, DeleteUser
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_api_mock.go github.com/libreshelf/library-ui/internal/ports UserAPI
