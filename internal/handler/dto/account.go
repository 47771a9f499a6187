// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"errors"

	"github.com/accountsvc/accountsvc/internal/model"
)

// Validation errors surfaced to clients as 400 responses.
var (
	ErrMissingID          = errors.New("id is required")
	ErrMissingName        = errors.New("name is required")
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingAddress     = errors.New("address is required")
	ErrMissingPhoneNumber = errors.New("phone_number is required")
)

// AccountRequest represents the request body for creating an account.
// Fields are pointers so a missing key and an empty value can be told
// apart during validation.
type AccountRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email"`
	Address     *string     `json:"address"`
	PhoneNumber *string     `json:"phone_number"`
	DateJoined  *model.Date `json:"date_joined"`
}

// Validate checks that all required fields are present.
// Name and email must additionally be non-empty.
func (r *AccountRequest) Validate() error {
	switch {
	case r.Name == nil || *r.Name == "":
		return ErrMissingName
	case r.Email == nil || *r.Email == "":
		return ErrMissingEmail
	case r.Address == nil:
		return ErrMissingAddress
	case r.PhoneNumber == nil:
		return ErrMissingPhoneNumber
	}
	return nil
}

// UpdateAccountRequest represents the request body for a whole-record update.
// The full field set replaces the stored record; id selects it.
type UpdateAccountRequest struct {
	ID string `json:"id"`
	AccountRequest
}

// Validate checks the identifier and the embedded field set.
func (r *UpdateAccountRequest) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}
	return r.AccountRequest.Validate()
}

// IDRequest carries an identifier in the request body.
// Used by the legacy read and delete forms.
type IDRequest struct {
	ID string `json:"id"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	DateJoined  model.Date `json:"date_joined"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToAccountResponse converts an Account model to AccountResponse DTO.
func ToAccountResponse(account *model.Account) *AccountResponse {
	return &AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Address:     account.Address,
		PhoneNumber: account.PhoneNumber,
		DateJoined:  account.DateJoined,
	}
}

// ToAccountListResponse converts a slice of Account models.
// Always returns a non-nil slice so empty storage serializes as [].
func ToAccountListResponse(accounts []*model.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = *ToAccountResponse(account)
	}
	return responses
}
