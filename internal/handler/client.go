package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mfcarv/banco-api/internal/domain"
	"github.com/mfcarv/banco-api/internal/logging"
)

type clientService interface {
	RegisterClient(ctx context.Context, taxID, name, birthDate, address string) (domain.ClientDetails, error)
	ListClients(ctx context.Context) []domain.ClientDetails
	OpenAccount(ctx context.Context, taxID string) (domain.AccountDetails, error)
	ClientAccounts(ctx context.Context, taxID string) ([]domain.AccountSummary, error)
}

type ClientHandler struct {
	bank clientService
}

func NewClientHandler(bank clientService) *ClientHandler {
	return &ClientHandler{bank: bank}
}

type registerClientRequest struct {
	TaxID     string `json:"tax_id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}

func (r registerClientRequest) Validate() []FieldError {
	var errs []FieldError
	if r.TaxID == "" {
		errs = append(errs, FieldError{Field: "tax_id", Message: "required"})
	}
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if r.BirthDate == "" {
		errs = append(errs, FieldError{Field: "birth_date", Message: "required"})
	}
	if r.Address == "" {
		errs = append(errs, FieldError{Field: "address", Message: "required"})
	}
	return errs
}

type clientDTO struct {
	TaxID        string `json:"tax_id"`
	Name         string `json:"name"`
	BirthDate    string `json:"birth_date"`
	Address      string `json:"address"`
	AccountCount int    `json:"account_count"`
}

func toClientDTO(c domain.ClientDetails) clientDTO {
	return clientDTO{
		TaxID:        c.TaxID,
		Name:         c.Name,
		BirthDate:    c.BirthDate,
		Address:      c.Address,
		AccountCount: c.AccountCount,
	}
}

type accountSummaryDTO struct {
	Ordinal     int    `json:"ordinal"`
	Number      int    `json:"number"`
	RoutingCode string `json:"routing_code"`
	Balance     string `json:"balance"`
}

func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	client, err := h.bank.RegisterClient(r.Context(), req.TaxID, req.Name, req.BirthDate, req.Address)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to register client", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toClientDTO(client))
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients := h.bank.ListClients(r.Context())

	dtos := make([]clientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = toClientDTO(c)
	}

	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *ClientHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	taxID := r.PathValue("taxID")
	if taxID == "" {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	account, err := h.bank.OpenAccount(r.Context(), taxID)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to open account", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toAccountDTO(account))
}

func (h *ClientHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	taxID := r.PathValue("taxID")
	if taxID == "" {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	summaries, err := h.bank.ClientAccounts(r.Context(), taxID)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list client accounts", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]accountSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = accountSummaryDTO{
			Ordinal:     s.Ordinal,
			Number:      s.Number,
			RoutingCode: s.RoutingCode,
			Balance:     s.Balance.String(),
		}
	}

	RespondSuccess(w, http.StatusOK, dtos)
}
