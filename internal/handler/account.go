package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfcarv/banco-api/internal/domain"
	"github.com/mfcarv/banco-api/internal/logging"
)

type accountService interface {
	ListAccounts(ctx context.Context) []domain.AccountDetails
	Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.AccountDetails, error)
	Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.AccountDetails, error)
	Statement(ctx context.Context, accountNumber int) (domain.Statement, error)
}

type AccountHandler struct {
	bank accountService
}

func NewAccountHandler(bank accountService) *AccountHandler {
	return &AccountHandler{bank: bank}
}

// transactionRequest carries the amount as a decimal string so values cross
// the boundary exactly, never as a float. Positivity is the core's call, not
// the shell's.
type transactionRequest struct {
	Amount string `json:"amount"`
}

func (r transactionRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Amount == "" {
		errs = append(errs, FieldError{Field: "amount", Message: "required"})
	} else if _, err := decimal.NewFromString(r.Amount); err != nil {
		errs = append(errs, FieldError{Field: "amount", Message: "must be a decimal number"})
	}
	return errs
}

type accountDTO struct {
	Number      int    `json:"number"`
	RoutingCode string `json:"routing_code"`
	Balance     string `json:"balance"`
	OwnerTaxID  string `json:"owner_tax_id"`
	OwnerName   string `json:"owner_name"`
}

func toAccountDTO(a domain.AccountDetails) accountDTO {
	return accountDTO{
		Number:      a.Number,
		RoutingCode: a.RoutingCode,
		Balance:     a.Balance.String(),
		OwnerTaxID:  a.OwnerTaxID,
		OwnerName:   a.OwnerName,
	}
}

type recordDTO struct {
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type statementDTO struct {
	AccountNumber int         `json:"account_number"`
	RoutingCode   string      `json:"routing_code"`
	Balance       string      `json:"balance"`
	Transactions  []recordDTO `json:"transactions"`
}

func toStatementDTO(st domain.Statement) statementDTO {
	records := make([]recordDTO, len(st.Records))
	for i, rec := range st.Records {
		records[i] = recordDTO{
			Kind:      string(rec.Kind),
			Amount:    rec.Amount.String(),
			Timestamp: rec.Timestamp,
		}
	}
	return statementDTO{
		AccountNumber: st.AccountNumber,
		RoutingCode:   st.RoutingCode,
		Balance:       st.Balance.String(),
		Transactions:  records,
	}
}

func accountNumberFromPath(r *http.Request) (int, *AppError) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number <= 0 {
		return 0, ErrResourceNotFound
	}
	return number, nil
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.bank.ListAccounts(r.Context())

	dtos := make([]accountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}

	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyTransaction(w, r, h.bank.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyTransaction(w, r, h.bank.Withdraw)
}

func (h *AccountHandler) applyTransaction(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.AccountDetails, error),
) {
	number, appErr := accountNumberFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)

	account, err := op(r.Context(), number, amount)
	if err != nil {
		logging.FromContext(r.Context()).Error("transaction rejected", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(account))
}

func (h *AccountHandler) Statement(w http.ResponseWriter, r *http.Request) {
	number, appErr := accountNumberFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	st, err := h.bank.Statement(r.Context(), number)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to fetch statement", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toStatementDTO(st))
}
