package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/accountsvc/accountsvc/internal/handler/dto"
	"github.com/accountsvc/accountsvc/internal/service"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /accounts.
// Responds 201 with the persisted account and a Location header.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input := service.CreateAccountInput{
		Name:        *req.Name,
		Email:       *req.Email,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
		DateJoined:  req.DateJoined,
	}

	account, err := h.svc.CreateAccount(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("account_created", "account_id", account.ID)

	w.Header().Set("Location", "/accounts/"+account.ID)
	writeJSON(w, http.StatusCreated, dto.ToAccountResponse(account))
}

// List handles GET /accounts/all.
// Empty storage yields an empty JSON array.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountListResponse(accounts))
}

// Get handles GET /accounts with the identifier in the JSON body.
// Legacy form kept for compatibility; prefer GetByID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	h.getAccount(w, r, req.ID)
}

// GetByID handles GET /accounts/{id}.
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	h.getAccount(w, r, chi.URLParam(r, "id"))
}

// getAccount is the shared read-one path.
func (h *AccountHandler) getAccount(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Account ID is required")
		return
	}

	account, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(account))
}

// Update handles PATCH /accounts.
// The body carries the identifier and the full field set; every mutable
// field of the stored record is overwritten.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input := service.UpdateAccountInput{
		ID:          req.ID,
		Name:        *req.Name,
		Email:       *req.Email,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
		DateJoined:  req.DateJoined,
	}

	account, err := h.svc.UpdateAccount(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("account_updated", "account_id", account.ID)

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(account))
}

// Delete handles DELETE /accounts with the identifier in the JSON body.
// Responds 204 whether or not the record existed.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	h.deleteAccount(w, r, req.ID)
}

// DeleteByID handles DELETE /accounts/{id}.
func (h *AccountHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	h.deleteAccount(w, r, chi.URLParam(r, "id"))
}

// deleteAccount is the shared idempotent delete path.
func (h *AccountHandler) deleteAccount(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Account ID is required")
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("account_deleted", "account_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps service errors to HTTP responses.
func (h *AccountHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		h.writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "The account cannot be found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *AccountHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
