package bank_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dailyapps/internal/app/bank"
	domain "dailyapps/internal/domain/bank"
	"dailyapps/internal/handler/http/httpx"
)

var errorRules = []httpx.Rule{
	{Target: domain.ErrAccountNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrCustomerNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrUnauthorized, Status: http.StatusForbidden},
	{Target: domain.ErrInsufficientFunds, Status: http.StatusConflict},
	{Target: domain.ErrAccountExists, Status: http.StatusConflict},
	{Target: domain.ErrInvalidTransaction, Status: http.StatusBadRequest},
	{Target: domain.ErrSameAccount, Status: http.StatusBadRequest},
	{Target: domain.ErrNoOwners, Status: http.StatusBadRequest},
}

type BankHandler struct {
	service bank.BankService
	logger  *zap.Logger
}

func NewBankHandler(s bank.BankService, l *zap.Logger) *BankHandler {
	return &BankHandler{service: s, logger: l}
}

type CreateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type OpenAccountRequest struct {
	Number   string      `json:"number"`
	Kind     domain.Kind `json:"kind"`
	OwnerIDs []string    `json:"owner_ids"`
}

type AmountRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	ActorID string          `json:"actor_id,omitempty"`
}

type TransferRequest struct {
	To      string          `json:"to"`
	Amount  decimal.Decimal `json:"amount"`
	ActorID string          `json:"actor_id"`
}

func (h *BankHandler) fail(w http.ResponseWriter, err error) {
	httpx.RenderError(w, h.logger, err, errorRules...)
}

func (h *BankHandler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), req.Name, req.ContactInfo)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, c)
}

func (h *BankHandler) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, c)
}

func (h *BankHandler) CustomerHistoryHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.CustomerHistory(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "number"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, txs)
}

func (h *BankHandler) OpenAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req OpenAccountRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	acc, err := h.service.OpenAccount(r.Context(), req.Kind, req.Number, req.OwnerIDs)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, acc)
}

func (h *BankHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	acc, err := h.service.GetAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, acc)
}

func (h *BankHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	acc, err := h.service.Deposit(r.Context(), chi.URLParam(r, "number"), req.Amount)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, acc)
}

func (h *BankHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	acc, err := h.service.Withdraw(r.Context(), chi.URLParam(r, "number"), req.ActorID, req.Amount)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, acc)
}

func (h *BankHandler) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	acc, err := h.service.Transfer(r.Context(), chi.URLParam(r, "number"), req.To, req.ActorID, req.Amount)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, acc)
}

func (h *BankHandler) TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.Transactions(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, txs)
}

func (h *BankHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.IntQuery(r, "limit", 0)
	if err != nil {
		h.fail(w, err)
		return
	}
	txs, err := h.service.TransactionSummary(r.Context(), chi.URLParam(r, "number"), limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, txs)
}
