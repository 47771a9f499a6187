package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/accountsvc/accountsvc/internal/model"
	"github.com/accountsvc/accountsvc/internal/repository"
)

type memStore struct {
	accounts map[string]model.Account
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[string]model.Account)}
}

func (m *memStore) CreateAccount(ctx context.Context, account *model.Account) error {
	m.nextID++
	account.ID = fmt.Sprintf("acct-%d", m.nextID)
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	account, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &account, nil
}

func (m *memStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0, len(m.accounts))
	for id := range m.accounts {
		account := m.accounts[id]
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

func (m *memStore) UpdateAccount(ctx context.Context, account *model.Account) error {
	if _, ok := m.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) DeleteAccount(ctx context.Context, id string) error {
	if _, ok := m.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

func TestAccountService_CreateAccount_DefaultsDateJoined(t *testing.T) {
	svc := NewAccountService(newMemStore())

	account, err := svc.CreateAccount(context.Background(), CreateAccountInput{
		Name:        "Alice",
		Email:       "a@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1111",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if account.ID == "" {
		t.Error("expected store-assigned id")
	}
	if !account.DateJoined.Equal(model.Today()) {
		t.Errorf("expected date_joined defaulted to today, got %s", account.DateJoined)
	}
}

func TestAccountService_CreateAccount_KeepsExplicitDate(t *testing.T) {
	svc := NewAccountService(newMemStore())

	joined := model.NewDate(2019, time.May, 20)
	account, err := svc.CreateAccount(context.Background(), CreateAccountInput{
		Name:        "Alice",
		Email:       "a@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1111",
		DateJoined:  &joined,
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if !account.DateJoined.Equal(joined) {
		t.Errorf("expected date_joined %s, got %s", joined, account.DateJoined)
	}
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	svc := NewAccountService(newMemStore())

	_, err := svc.GetAccount(context.Background(), "missing")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_UpdateAccount_OverwritesFields(t *testing.T) {
	store := newMemStore()
	svc := NewAccountService(store)

	created, err := svc.CreateAccount(context.Background(), CreateAccountInput{
		Name:        "Alice",
		Email:       "a@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1111",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	updated, err := svc.UpdateAccount(context.Background(), UpdateAccountInput{
		ID:          created.ID,
		Name:        "Jake",
		Email:       "j@x.com",
		Address:     "2 Side St",
		PhoneNumber: "555-2222",
	})
	if err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}

	if updated.Name != "Jake" || updated.Email != "j@x.com" {
		t.Errorf("fields not overwritten: %+v", updated)
	}
	// DateJoined was omitted from the update, so the stored value stays.
	if !updated.DateJoined.Equal(created.DateJoined) {
		t.Errorf("date_joined changed unexpectedly: got %s, want %s", updated.DateJoined, created.DateJoined)
	}
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	svc := NewAccountService(newMemStore())

	_, err := svc.UpdateAccount(context.Background(), UpdateAccountInput{
		ID:          "missing",
		Name:        "Jake",
		Email:       "j@x.com",
		Address:     "2 Side St",
		PhoneNumber: "555-2222",
	})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_DeleteAccount_Idempotent(t *testing.T) {
	store := newMemStore()
	svc := NewAccountService(store)

	created, err := svc.CreateAccount(context.Background(), CreateAccountInput{
		Name:        "Alice",
		Email:       "a@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1111",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteAccount(context.Background(), created.ID); err != nil {
		t.Errorf("second delete must be a no-op, got %v", err)
	}
	if err := svc.DeleteAccount(context.Background(), "never-existed"); err != nil {
		t.Errorf("deleting unknown id must be a no-op, got %v", err)
	}
}
