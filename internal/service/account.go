// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountsvc/accountsvc/internal/model"
	"github.com/accountsvc/accountsvc/internal/repository"
)

// Service errors.
var (
	ErrAccountNotFound = errors.New("account not found")
)

// AccountStore is the persistence interface consumed by the service.
// The repository implements it; tests substitute an in-memory fake.
// Identity assignment belongs to the store: CreateAccount must set the ID
// on the passed model.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	UpdateAccount(ctx context.Context, account *model.Account) error
	DeleteAccount(ctx context.Context, id string) error
}

// AccountService handles account CRUD logic.
// It holds no per-request state; every method issues a single store call
// (update performs a lookup first) and propagates failures without retrying.
type AccountService struct {
	store AccountStore
}

// NewAccountService creates a new AccountService.
func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

// CreateAccountInput defines input for creating an account.
type CreateAccountInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  *model.Date
}

// CreateAccount persists a new account.
// DateJoined defaults to today (UTC) when the caller omitted it.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*model.Account, error) {
	dateJoined := model.Today()
	if input.DateJoined != nil {
		dateJoined = *input.DateJoined
	}

	account := &model.Account{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		DateJoined:  dateJoined,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// ListAccounts retrieves all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.store.ListAccounts(ctx)
}

// UpdateAccountInput defines input for updating an account.
// Every field overwrites the stored value; sparse updates are not supported.
type UpdateAccountInput struct {
	ID          string
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  *model.Date
}

// UpdateAccount overwrites the mutable fields of an existing account.
func (s *AccountService) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*model.Account, error) {
	account, err := s.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.Email = input.Email
	account.Address = input.Address
	account.PhoneNumber = input.PhoneNumber
	if input.DateJoined != nil {
		account.DateJoined = *input.DateJoined
	}

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// DeleteAccount removes an account by ID.
// Deleting an identifier that does not exist is a no-op, not an error.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	err := s.store.DeleteAccount(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
