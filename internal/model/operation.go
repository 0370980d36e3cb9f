package model

import "time"

// OperationType represents the kind of money movement.
type OperationType string

const (
	OperationTypeFee            OperationType = "FEE"
	OperationTypeTopUp          OperationType = "TOP_UP"
	OperationTypePurchase       OperationType = "PURCHASE"
	OperationTypeCashback       OperationType = "CASHBACK"
	OperationTypeTransfer       OperationType = "TRANSFER"
	OperationTypeBillPayment    OperationType = "BILL_PAYMENT"
	OperationTypeCashWithdrawal OperationType = "CASH_WITHDRAWAL"
)

// OperationTypes lists every operation type in declaration order.
var OperationTypes = []OperationType{
	OperationTypeFee,
	OperationTypeTopUp,
	OperationTypePurchase,
	OperationTypeCashback,
	OperationTypeTransfer,
	OperationTypeBillPayment,
	OperationTypeCashWithdrawal,
}

// IsValid checks if the operation type is known.
func (t OperationType) IsValid() bool {
	for _, known := range OperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsDebit reports whether the operation takes money from the account.
func (t OperationType) IsDebit() bool {
	switch t {
	case OperationTypeFee, OperationTypePurchase, OperationTypeTransfer,
		OperationTypeBillPayment, OperationTypeCashWithdrawal:
		return true
	}
	return false
}

// OperationStatus represents the processing state of an operation.
type OperationStatus string

const (
	OperationStatusFailed      OperationStatus = "FAILED"
	OperationStatusCompleted   OperationStatus = "COMPLETED"
	OperationStatusInProgress  OperationStatus = "IN_PROGRESS"
	OperationStatusUnspecified OperationStatus = "UNSPECIFIED"
)

// OperationStatuses lists every operation status in declaration order.
var OperationStatuses = []OperationStatus{
	OperationStatusFailed,
	OperationStatusCompleted,
	OperationStatusInProgress,
	OperationStatusUnspecified,
}

// IsValid checks if the operation status is known.
func (s OperationStatus) IsValid() bool {
	for _, known := range OperationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Operation represents a single money movement on an account.
type Operation struct {
	ID        string          `json:"id"`
	Type      OperationType   `json:"type"`
	Status    OperationStatus `json:"status"`
	Amount    float64         `json:"amount"`
	CardID    string          `json:"cardId"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	AccountID string          `json:"accountId"`
}

// OperationsSummary aggregates operation amounts for an account.
type OperationsSummary struct {
	SpentAmount    float64 `json:"spentAmount"`
	ReceivedAmount float64 `json:"receivedAmount"`
	CashbackAmount float64 `json:"cashbackAmount"`
}

// Receipt is the printable receipt of an operation.
type Receipt struct {
	URL      string `json:"url"`
	Document string `json:"document"`
}
