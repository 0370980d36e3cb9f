package schema

import (
	"net/url"

	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// Operation is the operation shape returned by /api/v1/operations.
type Operation struct {
	ID        string    `json:"id" validate:"required"`
	Type      string    `json:"type" validate:"oneof=FEE TOP_UP PURCHASE CASHBACK TRANSFER BILL_PAYMENT CASH_WITHDRAWAL"`
	Status    string    `json:"status" validate:"oneof=FAILED COMPLETED IN_PROGRESS UNSPECIFIED"`
	Amount    float64   `json:"amount"`
	CardID    string    `json:"cardId" validate:"required"`
	Category  string    `json:"category"`
	CreatedAt Timestamp `json:"createdAt"`
	AccountID string    `json:"accountId" validate:"required"`
}

// ToModel converts the payload to the domain entity.
func (o Operation) ToModel() model.Operation {
	return model.Operation{
		ID:        o.ID,
		Type:      model.OperationType(o.Type),
		Status:    model.OperationStatus(o.Status),
		Amount:    o.Amount,
		CardID:    o.CardID,
		Category:  o.Category,
		CreatedAt: o.CreatedAt.Time,
		AccountID: o.AccountID,
	}
}

// OperationReceipt is the receipt of an operation.
type OperationReceipt struct {
	URL      string `json:"url" validate:"required,url"`
	Document string `json:"document"`
}

// ToModel converts the payload to the domain entity.
func (r OperationReceipt) ToModel() model.Receipt {
	return model.Receipt{URL: r.URL, Document: r.Document}
}

// OperationsSummary aggregates amounts for an account.
type OperationsSummary struct {
	SpentAmount    float64 `json:"spentAmount"`
	ReceivedAmount float64 `json:"receivedAmount"`
	CashbackAmount float64 `json:"cashbackAmount"`
}

// ToModel converts the payload to the domain entity.
func (s OperationsSummary) ToModel() model.OperationsSummary {
	return model.OperationsSummary{
		SpentAmount:    s.SpentAmount,
		ReceivedAmount: s.ReceivedAmount,
		CashbackAmount: s.CashbackAmount,
	}
}

// GetOperationsQuery is the query of GET /api/v1/operations.
type GetOperationsQuery struct {
	AccountID string `json:"accountId"`
}

// Values encodes the query string.
func (q GetOperationsQuery) Values() url.Values {
	return url.Values{"accountId": []string{q.AccountID}}
}

// GetOperationsSummaryQuery is the query of GET /api/v1/operations/operations-summary.
type GetOperationsSummaryQuery struct {
	AccountID string `json:"accountId"`
}

// Values encodes the query string.
func (q GetOperationsSummaryQuery) Values() url.Values {
	return url.Values{"accountId": []string{q.AccountID}}
}

// MakeOperationRequest is the body shared by the make-*-operation endpoints.
type MakeOperationRequest struct {
	Status    string  `json:"status" validate:"oneof=FAILED COMPLETED IN_PROGRESS UNSPECIFIED"`
	Amount    float64 `json:"amount"`
	CardID    string  `json:"cardId" validate:"required"`
	AccountID string  `json:"accountId" validate:"required"`
}

// NewMakeOperationRequest fills status and amount with fake data.
func NewMakeOperationRequest(fake *fakers.Fake, cardID, accountID string) MakeOperationRequest {
	return MakeOperationRequest{
		Status:    string(fake.OperationStatus()),
		Amount:    fake.Amount(),
		CardID:    cardID,
		AccountID: accountID,
	}
}

// MakePurchaseOperationRequest adds the purchase category.
type MakePurchaseOperationRequest struct {
	MakeOperationRequest
	Category string `json:"category" validate:"required"`
}

// NewMakePurchaseOperationRequest fills status, amount and category with fake data.
func NewMakePurchaseOperationRequest(fake *fakers.Fake, cardID, accountID string) MakePurchaseOperationRequest {
	return MakePurchaseOperationRequest{
		MakeOperationRequest: NewMakeOperationRequest(fake, cardID, accountID),
		Category:             fake.Category(),
	}
}

// Per-endpoint names for the shared request shape.
type (
	MakeFeeOperationRequest            = MakeOperationRequest
	MakeTopUpOperationRequest          = MakeOperationRequest
	MakeCashbackOperationRequest       = MakeOperationRequest
	MakeTransferOperationRequest       = MakeOperationRequest
	MakeBillPaymentOperationRequest    = MakeOperationRequest
	MakeCashWithdrawalOperationRequest = MakeOperationRequest
)

// OperationResponse is the body returned by GET /api/v1/operations/{operation_id}
// and by every make-*-operation endpoint.
type OperationResponse struct {
	Operation Operation `json:"operation"`
}

// Per-endpoint names for the shared response shape.
type (
	GetOperationResponse                = OperationResponse
	MakeFeeOperationResponse            = OperationResponse
	MakeTopUpOperationResponse          = OperationResponse
	MakeCashbackOperationResponse       = OperationResponse
	MakeTransferOperationResponse       = OperationResponse
	MakePurchaseOperationResponse       = OperationResponse
	MakeBillPaymentOperationResponse    = OperationResponse
	MakeCashWithdrawalOperationResponse = OperationResponse
)

// GetOperationsResponse is the body returned by GET /api/v1/operations.
type GetOperationsResponse struct {
	Operations []Operation `json:"operations" validate:"dive"`
}

// GetOperationReceiptResponse is the body returned by
// GET /api/v1/operations/operation-receipt/{operation_id}.
type GetOperationReceiptResponse struct {
	Receipt OperationReceipt `json:"receipt"`
}

// GetOperationsSummaryResponse is the body returned by
// GET /api/v1/operations/operations-summary.
type GetOperationsSummaryResponse struct {
	Summary OperationsSummary `json:"summary"`
}

// OperationFromModel converts a domain operation to its payload.
func OperationFromModel(op model.Operation) Operation {
	return Operation{
		ID:        op.ID,
		Type:      string(op.Type),
		Status:    string(op.Status),
		Amount:    op.Amount,
		CardID:    op.CardID,
		Category:  op.Category,
		CreatedAt: Timestamp{op.CreatedAt},
		AccountID: op.AccountID,
	}
}

// ReceiptFromModel converts a domain receipt to its payload.
func ReceiptFromModel(r model.Receipt) OperationReceipt {
	return OperationReceipt{URL: r.URL, Document: r.Document}
}

// SummaryFromModel converts a domain summary to its payload.
func SummaryFromModel(s model.OperationsSummary) OperationsSummary {
	return OperationsSummary{
		SpentAmount:    s.SpentAmount,
		ReceivedAmount: s.ReceivedAmount,
		CashbackAmount: s.CashbackAmount,
	}
}

// ToModel converts the request to an operation of type t.
func (r MakeOperationRequest) ToModel(t model.OperationType) model.Operation {
	return model.Operation{
		Type:      t,
		Status:    model.OperationStatus(r.Status),
		Amount:    r.Amount,
		CardID:    r.CardID,
		AccountID: r.AccountID,
	}
}

// ToModel converts the request to a purchase operation.
func (r MakePurchaseOperationRequest) ToModel() model.Operation {
	op := r.MakeOperationRequest.ToModel(model.OperationTypePurchase)
	op.Category = r.Category
	return op
}
