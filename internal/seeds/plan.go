package seeds

import (
	"errors"
	"fmt"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// ErrInvalidPlan is returned by Plan.Validate.
var ErrInvalidPlan = errors.New("invalid seeds plan")

// CardsPlan is the number of cards to issue on an account.
type CardsPlan struct {
	Count int `json:"count"`
}

// OperationsPlan is the number of operations of one type to make on an account.
type OperationsPlan struct {
	Count int `json:"count"`
}

// AccountsPlan describes the accounts of one type opened for every user.
type AccountsPlan struct {
	Count int `json:"count"`

	PhysicalCards CardsPlan `json:"physical_cards"`
	VirtualCards  CardsPlan `json:"virtual_cards"`

	TopUpOperations          OperationsPlan `json:"top_up_operations"`
	PurchaseOperations       OperationsPlan `json:"purchase_operations"`
	TransferOperations       OperationsPlan `json:"transfer_operations"`
	CashWithdrawalOperations OperationsPlan `json:"cash_withdrawal_operations"`
	FeeOperations            OperationsPlan `json:"fee_operations"`
	CashbackOperations       OperationsPlan `json:"cashback_operations"`
	BillPaymentOperations    OperationsPlan `json:"bill_payment_operations"`
}

type operationStep struct {
	Type  model.OperationType
	Count int
}

// operations lists the operation counts in the order they are made.
func (p AccountsPlan) operations() []operationStep {
	return []operationStep{
		{model.OperationTypeTopUp, p.TopUpOperations.Count},
		{model.OperationTypePurchase, p.PurchaseOperations.Count},
		{model.OperationTypeTransfer, p.TransferOperations.Count},
		{model.OperationTypeCashWithdrawal, p.CashWithdrawalOperations.Count},
		{model.OperationTypeFee, p.FeeOperations.Count},
		{model.OperationTypeCashback, p.CashbackOperations.Count},
		{model.OperationTypeBillPayment, p.BillPaymentOperations.Count},
	}
}

func (p AccountsPlan) operationCount() int {
	n := 0
	for _, op := range p.operations() {
		n += op.Count
	}
	return n
}

// calls is the number of gateway calls one account of this plan costs.
func (p AccountsPlan) calls() int {
	return 1 + p.PhysicalCards.Count + p.VirtualCards.Count + p.operationCount()
}

// UsersPlan describes the users to create and what every one of them owns.
type UsersPlan struct {
	Count int `json:"count"`

	DepositAccounts    AccountsPlan `json:"deposit_accounts"`
	SavingsAccounts    AccountsPlan `json:"savings_accounts"`
	DebitCardAccounts  AccountsPlan `json:"debit_card_accounts"`
	CreditCardAccounts AccountsPlan `json:"credit_card_accounts"`
}

type accountStep struct {
	Type model.AccountType
	Plan AccountsPlan
}

// accounts lists the account plans in the order they are opened.
func (p UsersPlan) accounts() []accountStep {
	return []accountStep{
		{model.AccountTypeDeposit, p.DepositAccounts},
		{model.AccountTypeSavings, p.SavingsAccounts},
		{model.AccountTypeDebitCard, p.DebitCardAccounts},
		{model.AccountTypeCreditCard, p.CreditCardAccounts},
	}
}

// Plan is the declarative description of the data a seeding run creates.
type Plan struct {
	Users UsersPlan `json:"users"`
}

// Calls returns the number of gateway calls Build makes for the plan.
func (p Plan) Calls() int {
	perUser := 1
	for _, step := range p.Users.accounts() {
		perUser += step.Plan.Count * step.Plan.calls()
	}
	return p.Users.Count * perUser
}

// Validate rejects negative counts and operations on accounts that never
// get a card to charge.
func (p Plan) Validate() error {
	if p.Users.Count < 0 {
		return fmt.Errorf("%w: negative users count", ErrInvalidPlan)
	}
	for _, step := range p.Users.accounts() {
		ap := step.Plan
		counts := []int{ap.Count, ap.PhysicalCards.Count, ap.VirtualCards.Count}
		for _, op := range ap.operations() {
			counts = append(counts, op.Count)
		}
		for _, n := range counts {
			if n < 0 {
				return fmt.Errorf("%w: negative count in %s accounts", ErrInvalidPlan, step.Type)
			}
		}
		if ap.operationCount() == 0 || ap.PhysicalCards.Count+ap.VirtualCards.Count > 0 {
			continue
		}
		if step.Type == model.AccountTypeDeposit || step.Type == model.AccountTypeSavings {
			return fmt.Errorf("%w: %s accounts have operations but no cards", ErrInvalidPlan, step.Type)
		}
	}
	return nil
}
