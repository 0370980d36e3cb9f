package seeds

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// CardResult identifies a seeded card.
type CardResult struct {
	CardID string `json:"card_id"`
}

// OperationResult identifies a seeded operation.
type OperationResult struct {
	OperationID string `json:"operation_id"`
}

// AccountResult holds what was created for one account.
// CardID is the card the account was opened with, empty for deposit and savings accounts.
type AccountResult struct {
	AccountID string `json:"account_id"`
	CardID    string `json:"card_id,omitempty"`

	PhysicalCards []CardResult `json:"physical_cards"`
	VirtualCards  []CardResult `json:"virtual_cards"`

	TopUpOperations          []OperationResult `json:"top_up_operations"`
	PurchaseOperations       []OperationResult `json:"purchase_operations"`
	TransferOperations       []OperationResult `json:"transfer_operations"`
	CashWithdrawalOperations []OperationResult `json:"cash_withdrawal_operations"`
	FeeOperations            []OperationResult `json:"fee_operations"`
	CashbackOperations       []OperationResult `json:"cashback_operations"`
	BillPaymentOperations    []OperationResult `json:"bill_payment_operations"`
}

func (a *AccountResult) operationsOf(t model.OperationType) *[]OperationResult {
	switch t {
	case model.OperationTypeTopUp:
		return &a.TopUpOperations
	case model.OperationTypePurchase:
		return &a.PurchaseOperations
	case model.OperationTypeTransfer:
		return &a.TransferOperations
	case model.OperationTypeCashWithdrawal:
		return &a.CashWithdrawalOperations
	case model.OperationTypeFee:
		return &a.FeeOperations
	case model.OperationTypeCashback:
		return &a.CashbackOperations
	case model.OperationTypeBillPayment:
		return &a.BillPaymentOperations
	}
	return nil
}

// Operations returns the seeded operations of type t.
func (a AccountResult) Operations(t model.OperationType) []OperationResult {
	if ops := a.operationsOf(t); ops != nil {
		return *ops
	}
	return nil
}

// OperationIDs returns the ids of every seeded operation on the account.
func (a AccountResult) OperationIDs() []string {
	var ids []string
	for _, ops := range [][]OperationResult{
		a.TopUpOperations,
		a.PurchaseOperations,
		a.TransferOperations,
		a.CashWithdrawalOperations,
		a.FeeOperations,
		a.CashbackOperations,
		a.BillPaymentOperations,
	} {
		for _, op := range ops {
			ids = append(ids, op.OperationID)
		}
	}
	return ids
}

// UserResult holds what was created for one user.
type UserResult struct {
	UserID string `json:"user_id"`

	DepositAccounts    []AccountResult `json:"deposit_accounts"`
	SavingsAccounts    []AccountResult `json:"savings_accounts"`
	DebitCardAccounts  []AccountResult `json:"debit_card_accounts"`
	CreditCardAccounts []AccountResult `json:"credit_card_accounts"`
}

func (u *UserResult) accountsOf(t model.AccountType) *[]AccountResult {
	switch t {
	case model.AccountTypeDeposit:
		return &u.DepositAccounts
	case model.AccountTypeSavings:
		return &u.SavingsAccounts
	case model.AccountTypeDebitCard:
		return &u.DebitCardAccounts
	case model.AccountTypeCreditCard:
		return &u.CreditCardAccounts
	}
	return nil
}

// Accounts returns the seeded accounts of type t.
func (u UserResult) Accounts(t model.AccountType) []AccountResult {
	if accounts := u.accountsOf(t); accounts != nil {
		return *accounts
	}
	return nil
}

// FirstAccount returns the first seeded account of type t.
func (u UserResult) FirstAccount(t model.AccountType) (AccountResult, bool) {
	accounts := u.Accounts(t)
	if len(accounts) == 0 {
		return AccountResult{}, false
	}
	return accounts[0], true
}

// Result is the output of a seeding run. Its accessors are safe for
// concurrent use by virtual users; Users must not be modified once shared.
type Result struct {
	Users []UserResult `json:"users"`

	next atomic.Uint64
}

// UserCount returns the number of seeded users.
func (r *Result) UserCount() int {
	return len(r.Users)
}

// UserIDs returns the id of every seeded user in order.
func (r *Result) UserIDs() []string {
	ids := make([]string, 0, len(r.Users))
	for _, u := range r.Users {
		ids = append(ids, u.UserID)
	}
	return ids
}

// GetNextUser hands out users round-robin. It reports false when the
// result has no users.
func (r *Result) GetNextUser() (UserResult, bool) {
	if len(r.Users) == 0 {
		return UserResult{}, false
	}
	i := r.next.Add(1) - 1
	return r.Users[i%uint64(len(r.Users))], true
}

// GetRandomUser returns a uniformly chosen user. It reports false when the
// result has no users.
func (r *Result) GetRandomUser() (UserResult, bool) {
	if len(r.Users) == 0 {
		return UserResult{}, false
	}
	return r.Users[rand.IntN(len(r.Users))], true
}
