package fakegateway

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	return NewBank(
		WithBaseURL("http://bank.test/"),
		WithClock(func() time.Time { return fixedNow }),
		WithCardFaker(fakers.New(11)),
	)
}

func mustUser(t *testing.T, b *Bank, email string) model.User {
	t.Helper()
	u, err := b.CreateUser(model.User{Email: email, FirstName: "Anna", LastName: "Smith"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return u
}

func TestBank_CreateUser(t *testing.T) {
	t.Parallel()

	b := newTestBank(t)
	u := mustUser(t, b, "anna@example.com")
	if u.ID == "" {
		t.Fatal("CreateUser() returned empty id")
	}

	got, err := b.GetUser(u.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got != u {
		t.Errorf("GetUser() = %+v, want %+v", got, u)
	}

	if _, err := b.CreateUser(model.User{Email: "ANNA@example.com"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email error = %v, want ErrConflict", err)
	}
	if _, err := b.CreateUser(model.User{Email: "not-an-email"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad email error = %v, want ErrInvalidArgument", err)
	}
	if _, err := b.GetUser("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser(missing) error = %v, want ErrNotFound", err)
	}
}

func TestBank_OpenAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accountType model.AccountType
		wantCards   int
	}{
		{model.AccountTypeDeposit, 0},
		{model.AccountTypeSavings, 0},
		{model.AccountTypeDebitCard, 1},
		{model.AccountTypeCreditCard, 1},
	}

	b := newTestBank(t)
	u := mustUser(t, b, "open@example.com")

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			a, err := b.OpenAccount(u.ID, tt.accountType)
			if err != nil {
				t.Fatalf("OpenAccount() error = %v", err)
			}
			if a.Status != model.AccountStatusActive || a.Type != tt.accountType {
				t.Errorf("account = %+v", a)
			}
			if len(a.Cards) != tt.wantCards {
				t.Fatalf("cards = %d, want %d", len(a.Cards), tt.wantCards)
			}
			for _, c := range a.Cards {
				if c.AccountID != a.ID || c.CardHolder != "Anna Smith" || len(c.CardNumber) != 16 {
					t.Errorf("card = %+v", c)
				}
				if c.ExpiryDate != "2029-05-01" {
					t.Errorf("ExpiryDate = %q, want 2029-05-01", c.ExpiryDate)
				}
				if !c.PaymentSystem.IsValid() {
					t.Errorf("PaymentSystem = %q", c.PaymentSystem)
				}
			}
		})
	}

	if _, err := b.OpenAccount("missing", model.AccountTypeDeposit); !errors.Is(err, ErrNotFound) {
		t.Errorf("OpenAccount(missing user) error = %v, want ErrNotFound", err)
	}
	if _, err := b.OpenAccount(u.ID, "LOAN"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("OpenAccount(LOAN) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBank_IssueCard_Ownership(t *testing.T) {
	t.Parallel()

	b := newTestBank(t)
	owner := mustUser(t, b, "owner@example.com")
	other := mustUser(t, b, "other@example.com")
	a, err := b.OpenAccount(owner.ID, model.AccountTypeDeposit)
	if err != nil {
		t.Fatalf("OpenAccount() error = %v", err)
	}

	card, err := b.IssueCard(owner.ID, a.ID, model.CardTypePhysical)
	if err != nil {
		t.Fatalf("IssueCard() error = %v", err)
	}
	if card.Type != model.CardTypePhysical {
		t.Errorf("Type = %s, want PHYSICAL", card.Type)
	}
	if _, err := b.IssueCard(other.ID, a.ID, model.CardTypeVirtual); !errors.Is(err, ErrNotFound) {
		t.Errorf("IssueCard(other user) error = %v, want ErrNotFound", err)
	}

	accounts, err := b.GetAccounts(owner.ID)
	if err != nil {
		t.Fatalf("GetAccounts() error = %v", err)
	}
	if len(accounts) != 1 || len(accounts[0].Cards) != 1 || accounts[0].Cards[0].ID != card.ID {
		t.Errorf("GetAccounts() = %+v, want the issued card", accounts)
	}
}

func newCardAccount(t *testing.T, b *Bank) model.Account {
	t.Helper()
	u := mustUser(t, b, strings.ToLower(t.Name())+"@example.com")
	a, err := b.OpenAccount(u.ID, model.AccountTypeCreditCard)
	if err != nil {
		t.Fatalf("OpenAccount() error = %v", err)
	}
	return a
}

func TestBank_MakeOperation_Validation(t *testing.T) {
	t.Parallel()

	b := newTestBank(t)
	a := newCardAccount(t, b)
	cardID := a.Cards[0].ID

	valid := model.Operation{
		Type:      model.OperationTypeTopUp,
		Status:    model.OperationStatusCompleted,
		Amount:    10,
		CardID:    cardID,
		AccountID: a.ID,
	}

	tests := []struct {
		name   string
		mutate func(*model.Operation)
		want   error
	}{
		{"valid", func(*model.Operation) {}, nil},
		{"unknown type", func(op *model.Operation) { op.Type = "GIFT" }, ErrInvalidArgument},
		{"unknown status", func(op *model.Operation) { op.Status = "DONE" }, ErrInvalidArgument},
		{"zero amount", func(op *model.Operation) { op.Amount = 0 }, ErrInvalidArgument},
		{"purchase without category", func(op *model.Operation) { op.Type = model.OperationTypePurchase }, ErrInvalidArgument},
		{"unknown account", func(op *model.Operation) { op.AccountID = "missing" }, ErrNotFound},
		{"foreign card", func(op *model.Operation) { op.CardID = "missing" }, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := valid
			tt.mutate(&op)
			_, err := b.MakeOperation(op)
			if tt.want == nil && err != nil {
				t.Fatalf("MakeOperation() error = %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("MakeOperation() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBank_OperationsAndSummary(t *testing.T) {
	t.Parallel()

	b := newTestBank(t)
	a := newCardAccount(t, b)
	cardID := a.Cards[0].ID

	record := func(opType model.OperationType, status model.OperationStatus, amount float64) model.Operation {
		t.Helper()
		op, err := b.MakeOperation(model.Operation{
			Type:      opType,
			Status:    status,
			Amount:    amount,
			CardID:    cardID,
			AccountID: a.ID,
			Category:  "taxi",
		})
		if err != nil {
			t.Fatalf("MakeOperation(%s) error = %v", opType, err)
		}
		return op
	}

	topUp := record(model.OperationTypeTopUp, model.OperationStatusCompleted, 0.1)
	record(model.OperationTypeTopUp, model.OperationStatusCompleted, 0.2)
	purchase := record(model.OperationTypePurchase, model.OperationStatusCompleted, 0.05)
	record(model.OperationTypeCashback, model.OperationStatusCompleted, 0.01)
	record(model.OperationTypeFee, model.OperationStatusFailed, 100)

	if topUp.Category != "" {
		t.Errorf("top up Category = %q, want empty", topUp.Category)
	}
	if purchase.Category != "taxi" || !purchase.CreatedAt.Equal(fixedNow) {
		t.Errorf("purchase = %+v", purchase)
	}

	ops, err := b.GetOperations(a.ID)
	if err != nil {
		t.Fatalf("GetOperations() error = %v", err)
	}
	if len(ops) != 5 {
		t.Fatalf("GetOperations() = %d ops, want 5", len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1].ID >= ops[i].ID {
			t.Errorf("operations not ordered by id: %s >= %s", ops[i-1].ID, ops[i].ID)
		}
	}
	if ops[0].ID != topUp.ID {
		t.Errorf("first operation = %s, want %s", ops[0].ID, topUp.ID)
	}

	summary, err := b.GetOperationsSummary(a.ID)
	if err != nil {
		t.Fatalf("GetOperationsSummary() error = %v", err)
	}
	want := model.OperationsSummary{SpentAmount: 0.05, ReceivedAmount: 0.3, CashbackAmount: 0.01}
	if summary != want {
		t.Errorf("GetOperationsSummary() = %+v, want %+v", summary, want)
	}
}

func TestBank_ReceiptAndDocuments(t *testing.T) {
	t.Parallel()

	b := newTestBank(t)
	a := newCardAccount(t, b)

	op, err := b.MakeOperation(model.Operation{
		Type:      model.OperationTypeCashWithdrawal,
		Status:    model.OperationStatusInProgress,
		Amount:    12.5,
		CardID:    a.Cards[0].ID,
		AccountID: a.ID,
	})
	if err != nil {
		t.Fatalf("MakeOperation() error = %v", err)
	}

	receipt, err := b.GetOperationReceipt(op.ID)
	if err != nil {
		t.Fatalf("GetOperationReceipt() error = %v", err)
	}
	if receipt.URL != "http://bank.test/receipts/"+op.ID+".pdf" {
		t.Errorf("receipt URL = %q", receipt.URL)
	}
	if !strings.Contains(receipt.Document, "12.50") {
		t.Errorf("receipt document = %q, want amount 12.50", receipt.Document)
	}

	tariff, err := b.GetDocument(a.ID, model.DocumentKindTariff)
	if err != nil {
		t.Fatalf("GetDocument(tariff) error = %v", err)
	}
	if tariff.URL != "http://bank.test/documents/tariff/"+a.ID+".pdf" || !strings.HasPrefix(tariff.Document, "Tariff for CREDIT_CARD") {
		t.Errorf("tariff = %+v", tariff)
	}

	if _, err := b.GetDocument("missing", model.DocumentKindContract); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDocument(missing) error = %v, want ErrNotFound", err)
	}
}
