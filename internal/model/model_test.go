package model

import (
	"errors"
	"testing"
)

func TestAccount_FirstCard(t *testing.T) {
	t.Parallel()

	account := &Account{
		ID:   "acc-1",
		Type: AccountTypeDebitCard,
		Cards: []Card{
			{ID: "card-1", Type: CardTypeVirtual},
			{ID: "card-2", Type: CardTypePhysical},
		},
	}

	card, err := account.FirstCard()
	if err != nil {
		t.Fatalf("FirstCard() error = %v", err)
	}
	if card.ID != "card-1" {
		t.Errorf("FirstCard().ID = %s, want card-1", card.ID)
	}
}

func TestAccount_FirstCard_NoCards(t *testing.T) {
	t.Parallel()

	account := &Account{ID: "acc-1", Type: AccountTypeDeposit}

	_, err := account.FirstCard()
	if !errors.Is(err, ErrNoCards) {
		t.Errorf("FirstCard() error = %v, want ErrNoCards", err)
	}
}

func TestEnums_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
		got   bool
	}{
		{"account type", true, AccountTypeCreditCard.IsValid()},
		{"unknown account type", false, AccountType("LOAN").IsValid()},
		{"account status", true, AccountStatusPendingClosure.IsValid()},
		{"card type", true, CardTypePhysical.IsValid()},
		{"lowercase card type", false, CardType("virtual").IsValid()},
		{"card status", true, CardStatusBlocked.IsValid()},
		{"payment system", true, CardPaymentSystemMastercard.IsValid()},
		{"operation type", true, OperationTypeCashWithdrawal.IsValid()},
		{"unknown operation type", false, OperationType("REFUND").IsValid()},
		{"operation status", true, OperationStatusUnspecified.IsValid()},
		{"empty operation status", false, OperationStatus("").IsValid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", tt.got, tt.valid)
			}
		})
	}
}

func TestOperationType_IsDebit(t *testing.T) {
	t.Parallel()

	debit := map[OperationType]bool{
		OperationTypeFee:            true,
		OperationTypeTopUp:          false,
		OperationTypePurchase:       true,
		OperationTypeCashback:       false,
		OperationTypeTransfer:       true,
		OperationTypeBillPayment:    true,
		OperationTypeCashWithdrawal: true,
	}

	for _, opType := range OperationTypes {
		if got := opType.IsDebit(); got != debit[opType] {
			t.Errorf("%s.IsDebit() = %v, want %v", opType, got, debit[opType])
		}
	}
}

func TestUser_FullName(t *testing.T) {
	t.Parallel()

	u := &User{FirstName: "Anna", MiddleName: "Maria", LastName: "Smith"}
	if got := u.FullName(); got != "Anna Maria Smith" {
		t.Errorf("FullName() = %q, want %q", got, "Anna Maria Smith")
	}

	u.MiddleName = ""
	if got := u.FullName(); got != "Anna Smith" {
		t.Errorf("FullName() = %q, want %q", got, "Anna Smith")
	}
}
