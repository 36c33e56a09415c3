// Package model holds the library domain types: books, borrowing
// transactions, and the transaction status state machine. Types mirror the
// backend's JSON wire shapes; behavior is pure and table-driven.
package model

// Book is a catalog entry.
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publicationYear"`
}

// BookRef is the nested book reference carried on transactions. Only the ID
// is required when writing; the backend fills in the title on reads.
type BookRef struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
}

// UserRef is the nested borrower reference carried on transactions.
type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
}
