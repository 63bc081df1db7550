// Package models defines the entity types exchanged between the CoinKeeper
// client and the backend: user accounts, categories, transactions, and the
// draft/patch shapes used for mutations.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

// User is the raw backend account record. The password field is only ever
// populated on records read back from the /users endpoints; it never leaves
// the auth layer.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Identity is the authenticated account (a User with the password stripped).
// It governs ownership of categories and transactions.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Identity strips the password from a backend user record.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}

// TransactionType is the direction of a transaction. The amount itself is
// always positive; direction is carried only by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known directions.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a user-defined grouping for transactions. Transactions refer
// to categories by name, not by id, so duplicates are legal and deleting a
// category leaves transactions with that name dangling.
type Category struct {
	ID      string `json:"id"`
	OwnerID string `json:"userId"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	Color   string `json:"color,omitempty"`
}

func (c Category) EntityID() string { return c.ID }

// Transaction is a single income or expense record.
type Transaction struct {
	ID       string          `json:"id"`
	OwnerID  string          `json:"userId"`
	Type     TransactionType `json:"type"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Date     Date            `json:"date"`
	Comment  string          `json:"comment,omitempty"`
}

func (t Transaction) EntityID() string { return t.ID }

// CategoryDraft is the user-entered part of a new category; the owner id is
// attached by the service and the id by the backend.
type CategoryDraft struct {
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// Validate checks the draft before any request is issued.
func (d CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: category name is required", common.ErrValidation)
	}
	return nil
}

// TransactionDraft is the user-entered part of a new transaction.
type TransactionDraft struct {
	Type     TransactionType `json:"type"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Date     Date            `json:"date"`
	Comment  string          `json:"comment,omitempty"`
}

// Validate checks the draft before any request is issued.
func (d TransactionDraft) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: transaction type must be income or expense", common.ErrValidation)
	}
	if d.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	}
	if strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrValidation)
	}
	return nil
}
