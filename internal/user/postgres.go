package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// PostgresStore persists users in Postgres. It owns no transaction
// spanning lookup and insert; callers rely on the unique index on
// LOWER(email) and map ErrDuplicateEmail accordingly.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Provider, u.ProviderID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("user: insert failed: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.get(ctx, `
		SELECT id, name, email, phone, password_hash, provider, provider_id,
		       created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
}

func (s *PostgresStore) GetByProvider(ctx context.Context, provider, providerID string) (*User, error) {
	return s.get(ctx, `
		SELECT id, name, email, phone, password_hash, provider, provider_id,
		       created_at, updated_at
		FROM users
		WHERE provider = $1 AND provider_id = $2
	`, provider, providerID)
}

func (s *PostgresStore) get(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Provider, &u.ProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: query failed: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, password_hash, provider, provider_id,
		       created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("user: list failed: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
			&u.Provider, &u.ProviderID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("user: scan failed: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
