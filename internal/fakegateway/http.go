package fakegateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gatewayperf/gatewayperf/internal/middleware"
	"github.com/gatewayperf/gatewayperf/internal/model"
	"github.com/gatewayperf/gatewayperf/internal/schema"
)

// Options tunes both surfaces.
type Options struct {
	Latency       time.Duration
	LatencyJitter time.Duration
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type httpHandler struct {
	bank   *Bank
	logger *slog.Logger
}

// NewHTTPHandler exposes bank on the gateway's /api/v1 routes plus the
// /healthz and /readyz probes.
func NewHTTPHandler(bank *Bank, logger *slog.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "fakegateway.http")
	h := &httpHandler{bank: bank, logger: logger}
	health := NewHealthHandler(map[string]HealthChecker{"bank": bank})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodySize))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
	})

	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Latency(opts.Latency, opts.LatencyJitter))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/{user_id}", h.getUser)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.getAccounts)
			r.Post("/open-deposit-account", h.openAccount(model.AccountTypeDeposit))
			r.Post("/open-savings-account", h.openAccount(model.AccountTypeSavings))
			r.Post("/open-debit-card-account", h.openAccount(model.AccountTypeDebitCard))
			r.Post("/open-credit-card-account", h.openAccount(model.AccountTypeCreditCard))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/issue-virtual-card", h.issueCard(model.CardTypeVirtual))
			r.Post("/issue-physical-card", h.issueCard(model.CardTypePhysical))
		})

		r.Route("/operations", func(r chi.Router) {
			r.Get("/", h.getOperations)
			r.Get("/operations-summary", h.getOperationsSummary)
			r.Get("/operation-receipt/{operation_id}", h.getOperationReceipt)
			r.Get("/{operation_id}", h.getOperation)
			r.Post("/make-fee-operation", h.makeOperation(model.OperationTypeFee))
			r.Post("/make-top-up-operation", h.makeOperation(model.OperationTypeTopUp))
			r.Post("/make-cashback-operation", h.makeOperation(model.OperationTypeCashback))
			r.Post("/make-transfer-operation", h.makeOperation(model.OperationTypeTransfer))
			r.Post("/make-purchase-operation", h.makePurchaseOperation)
			r.Post("/make-bill-payment-operation", h.makeOperation(model.OperationTypeBillPayment))
			r.Post("/make-cash-withdrawal-operation", h.makeOperation(model.OperationTypeCashWithdrawal))
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/tariff-document/{account_id}", h.getDocument(model.DocumentKindTariff))
			r.Get("/contract-document/{account_id}", h.getDocument(model.DocumentKindContract))
		})
	})

	return r
}

func (h *httpHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	user, err := h.bank.CreateUser(req.ToModel())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.CreateUserResponse{User: schema.UserFromModel(user)})
}

func (h *httpHandler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.bank.GetUser(chi.URLParam(r, "user_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.GetUserResponse{User: schema.UserFromModel(user)})
}

func (h *httpHandler) getAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.bank.GetAccounts(r.URL.Query().Get("userId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := schema.GetAccountsResponse{Accounts: make([]schema.Account, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, schema.AccountFromModel(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *httpHandler) openAccount(accountType model.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req schema.OpenAccountRequest
		if !h.decode(w, r, &req) {
			return
		}
		account, err := h.bank.OpenAccount(req.UserID, accountType)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, schema.OpenAccountResponse{Account: schema.AccountFromModel(account)})
	}
}

func (h *httpHandler) issueCard(cardType model.CardType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req schema.IssueCardRequest
		if !h.decode(w, r, &req) {
			return
		}
		card, err := h.bank.IssueCard(req.UserID, req.AccountID, cardType)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, schema.IssueCardResponse{Card: schema.CardFromModel(card)})
	}
}

func (h *httpHandler) getOperation(w http.ResponseWriter, r *http.Request) {
	op, err := h.bank.GetOperation(chi.URLParam(r, "operation_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.GetOperationResponse{Operation: schema.OperationFromModel(op)})
}

func (h *httpHandler) getOperationReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.bank.GetOperationReceipt(chi.URLParam(r, "operation_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.GetOperationReceiptResponse{Receipt: schema.ReceiptFromModel(receipt)})
}

func (h *httpHandler) getOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.bank.GetOperations(r.URL.Query().Get("accountId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := schema.GetOperationsResponse{Operations: make([]schema.Operation, 0, len(ops))}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, schema.OperationFromModel(op))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *httpHandler) getOperationsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.bank.GetOperationsSummary(r.URL.Query().Get("accountId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.GetOperationsSummaryResponse{Summary: schema.SummaryFromModel(summary)})
}

func (h *httpHandler) makeOperation(opType model.OperationType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req schema.MakeOperationRequest
		if !h.decode(w, r, &req) {
			return
		}
		h.respondOperation(w, r, req.ToModel(opType))
	}
}

func (h *httpHandler) makePurchaseOperation(w http.ResponseWriter, r *http.Request) {
	var req schema.MakePurchaseOperationRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondOperation(w, r, req.ToModel())
}

func (h *httpHandler) respondOperation(w http.ResponseWriter, r *http.Request, op model.Operation) {
	created, err := h.bank.MakeOperation(op)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.OperationResponse{Operation: schema.OperationFromModel(created)})
}

func (h *httpHandler) getDocument(kind model.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.bank.GetDocument(chi.URLParam(r, "account_id"), kind)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		payload := schema.DocumentFromModel(doc)
		if kind == model.DocumentKindTariff {
			writeJSON(w, http.StatusOK, schema.GetTariffDocumentResponse{Tariff: payload})
			return
		}
		writeJSON(w, http.StatusOK, schema.GetContractDocumentResponse{Contract: payload})
	}
}

func (h *httpHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func (h *httpHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := httpStatus(err)
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
	writeJSON(w, code, ErrorResponse{Detail: err.Error()})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
