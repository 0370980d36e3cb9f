// Package gateway defines the protocol-agnostic view of the gateway service
// shared by seeding, demos and load scenarios.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// ErrUnknownProtocol is returned by ParseProtocol.
var ErrUnknownProtocol = errors.New("unknown protocol")

// Protocol selects the transport used to reach the gateway.
type Protocol string

const (
	ProtocolHTTP Protocol = "http"
	ProtocolGRPC Protocol = "grpc"
)

// ParseProtocol accepts "http" or "grpc" in any case.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case ProtocolHTTP, ProtocolGRPC:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
}

// String implements pflag.Value.
func (p *Protocol) String() string { return string(*p) }

// Set implements pflag.Value.
func (p *Protocol) Set(s string) error {
	parsed, err := ParseProtocol(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Protocol) Type() string { return "protocol" }

// Users covers the users service.
type Users interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	// CreateUser registers a user filled with fake data.
	CreateUser(ctx context.Context) (model.User, error)
}

// Accounts covers the accounts service.
type Accounts interface {
	GetAccounts(ctx context.Context, userID string) ([]model.Account, error)
	OpenDepositAccount(ctx context.Context, userID string) (model.Account, error)
	OpenSavingsAccount(ctx context.Context, userID string) (model.Account, error)
	OpenDebitCardAccount(ctx context.Context, userID string) (model.Account, error)
	OpenCreditCardAccount(ctx context.Context, userID string) (model.Account, error)
}

// Cards covers the cards service.
type Cards interface {
	IssueVirtualCard(ctx context.Context, userID, accountID string) (model.Card, error)
	IssuePhysicalCard(ctx context.Context, userID, accountID string) (model.Card, error)
}

// Operations covers the operations service.
// Make* methods fill status and amount (and the purchase category) with fake data.
type Operations interface {
	GetOperation(ctx context.Context, operationID string) (model.Operation, error)
	GetOperationReceipt(ctx context.Context, operationID string) (model.Receipt, error)
	GetOperations(ctx context.Context, accountID string) ([]model.Operation, error)
	GetOperationsSummary(ctx context.Context, accountID string) (model.OperationsSummary, error)
	MakeFeeOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakeTopUpOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakeCashbackOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakeTransferOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakePurchaseOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakeBillPaymentOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
	MakeCashWithdrawalOperation(ctx context.Context, cardID, accountID string) (model.Operation, error)
}

// Documents covers the documents service.
type Documents interface {
	GetTariffDocument(ctx context.Context, accountID string) (model.Document, error)
	GetContractDocument(ctx context.Context, accountID string) (model.Document, error)
}

// Gateway is the full gateway surface over one transport.
type Gateway interface {
	Users
	Accounts
	Cards
	Operations
	Documents
	Protocol() Protocol
	Close() error
}

// MakeOperation dispatches to the Make*Operation method for opType.
func MakeOperation(ctx context.Context, ops Operations, opType model.OperationType, cardID, accountID string) (model.Operation, error) {
	switch opType {
	case model.OperationTypeFee:
		return ops.MakeFeeOperation(ctx, cardID, accountID)
	case model.OperationTypeTopUp:
		return ops.MakeTopUpOperation(ctx, cardID, accountID)
	case model.OperationTypeCashback:
		return ops.MakeCashbackOperation(ctx, cardID, accountID)
	case model.OperationTypeTransfer:
		return ops.MakeTransferOperation(ctx, cardID, accountID)
	case model.OperationTypePurchase:
		return ops.MakePurchaseOperation(ctx, cardID, accountID)
	case model.OperationTypeBillPayment:
		return ops.MakeBillPaymentOperation(ctx, cardID, accountID)
	case model.OperationTypeCashWithdrawal:
		return ops.MakeCashWithdrawalOperation(ctx, cardID, accountID)
	}
	return model.Operation{}, fmt.Errorf("make operation: unsupported type %q", opType)
}

// OpenAccount dispatches to the Open*Account method for accountType.
func OpenAccount(ctx context.Context, accounts Accounts, accountType model.AccountType, userID string) (model.Account, error) {
	switch accountType {
	case model.AccountTypeDeposit:
		return accounts.OpenDepositAccount(ctx, userID)
	case model.AccountTypeSavings:
		return accounts.OpenSavingsAccount(ctx, userID)
	case model.AccountTypeDebitCard:
		return accounts.OpenDebitCardAccount(ctx, userID)
	case model.AccountTypeCreditCard:
		return accounts.OpenCreditCardAccount(ctx, userID)
	}
	return model.Account{}, fmt.Errorf("open account: unsupported type %q", accountType)
}

// IssueCard dispatches to the Issue*Card method for cardType.
func IssueCard(ctx context.Context, cards Cards, cardType model.CardType, userID, accountID string) (model.Card, error) {
	switch cardType {
	case model.CardTypeVirtual:
		return cards.IssueVirtualCard(ctx, userID, accountID)
	case model.CardTypePhysical:
		return cards.IssuePhysicalCard(ctx, userID, accountID)
	}
	return model.Card{}, fmt.Errorf("issue card: unsupported type %q", cardType)
}
