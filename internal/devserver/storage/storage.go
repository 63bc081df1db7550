// Package storage is the sqlite persistence of the development backend. It
// stores records the same way json-server does: flat rows keyed by a
// generated string id, with no constraints beyond the primary key. In
// particular passwords are stored as given — this backend exists for local
// development against the documented contract, nothing more.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/devserver/migrations"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// User is a raw account row. The password travels in user responses, as the
// contract (and json-server) does.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Category mirrors the category resource of the contract.
type Category struct {
	ID      string `json:"id"`
	OwnerID string `json:"userId"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Transaction mirrors the transaction resource. The date stays an opaque
// string; this backend never interprets it.
type Transaction struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"userId"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Comment  string  `json:"comment,omitempty"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) the backing database and applies migrations.
func Open(ctx context.Context, dsn string) (*Store, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, nil, err
	}

	return NewStore(db), db, nil
}

func (s *Store) FindUsersByEmail(ctx context.Context, email string) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, email, password FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `SELECT id, email, password FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %s: %w", id, err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u User) (*User, error) {
	u.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id, email, password) VALUES (?, ?, ?)`,
		u.ID, u.Email, u.Password)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &u, nil
}

func (s *Store) ListCategories(ctx context.Context, ownerID string) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, icon, color FROM categories WHERE user_id = ? ORDER BY rowid`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, c Category) (*Category, error) {
	c.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, icon, color) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Icon, c.Color)
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c Category) (*Category, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET user_id = ?, name = ?, icon = ?, color = ? WHERE id = ?`,
		c.OwnerID, c.Name, c.Icon, c.Color, c.ID)
	if err != nil {
		return nil, fmt.Errorf("updating category %s: %w", c.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID string) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, type, amount, category, date, comment FROM transactions WHERE user_id = ? ORDER BY rowid`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	transactions := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Amount, &t.Category, &t.Date, &t.Comment); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *Store) CreateTransaction(ctx context.Context, t Transaction) (*Transaction, error) {
	t.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, category, date, comment) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.Type, t.Amount, t.Category, t.Date, t.Comment)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}
	return &t, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, t Transaction) (*Transaction, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET user_id = ?, type = ?, amount = ?, category = ?, date = ?, comment = ? WHERE id = ?`,
		t.OwnerID, t.Type, t.Amount, t.Category, t.Date, t.Comment, t.ID)
	if err != nil {
		return nil, fmt.Errorf("updating transaction %s: %w", t.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, common.ErrNotFound
	}
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
