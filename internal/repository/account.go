package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"

	"github.com/accountsvc/accountsvc/internal/model"
)

// ErrAccountNotFound indicates no account row matched the given identifier.
var ErrAccountNotFound = errors.New("account not found")

// CreateAccount inserts a new account and assigns its identifier.
// The repository owns identity: the generated ULID is written back onto the
// model along with the persisted timestamps. ULIDs are never reused, so
// identifiers of deleted accounts stay retired.
func (r *Repository) CreateAccount(ctx context.Context, account *model.Account) error {
	account.ID = ulid.Make().String()

	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, name, email, address, phone_number, date_joined, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined.Time,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccountByID retrieves an account by its ID.
func (r *Repository) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return account, nil
}

// ListAccounts retrieves every account, oldest first.
func (r *Repository) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined, created_at, updated_at
		FROM accounts
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// UpdateAccount overwrites every mutable field of an existing account.
// The ID is immutable and only used for lookup.
func (r *Repository) UpdateAccount(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone_number = $5, date_joined = $6, updated_at = $7
		WHERE id = $1
	`

	account.UpdatedAt = time.Now().UTC()

	result, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined.Time,
		account.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes an account row.
// Returns ErrAccountNotFound when no row matched; callers that need
// idempotent semantics treat that as success.
func (r *Repository) DeleteAccount(ctx context.Context, id string) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// scanAccount scans a single row into an Account model.
func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	var dateJoined time.Time

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&dateJoined,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.DateJoined = model.Date{Time: dateJoined}
	return &account, nil
}
