package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

func TestParseProtocol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Protocol
		wantErr bool
	}{
		{"http", ProtocolHTTP, false},
		{"GRPC", ProtocolGRPC, false},
		{" grpc ", ProtocolGRPC, false},
		{"", "", true},
		{"soap", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProtocol(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseProtocol(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownProtocol) {
			t.Errorf("ParseProtocol(%q) error = %v, want ErrUnknownProtocol", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseProtocol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProtocol_Flag(t *testing.T) {
	t.Parallel()

	p := ProtocolHTTP
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&p, "protocol", "transport")

	if err := fs.Parse([]string{"--protocol", "grpc"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p != ProtocolGRPC {
		t.Errorf("protocol = %q, want grpc", p)
	}
	if err := fs.Parse([]string{"--protocol", "ftp"}); err == nil {
		t.Error("Parse(ftp) succeeded")
	}
}

// recorder implements Operations, Accounts and Cards by remembering the
// last method called.
type recorder struct {
	Operations
	called string
}

func (r *recorder) op(name string) (model.Operation, error) {
	r.called = name
	return model.Operation{}, nil
}

func (r *recorder) MakeFeeOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("fee")
}
func (r *recorder) MakeTopUpOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("top_up")
}
func (r *recorder) MakeCashbackOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("cashback")
}
func (r *recorder) MakeTransferOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("transfer")
}
func (r *recorder) MakePurchaseOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("purchase")
}
func (r *recorder) MakeBillPaymentOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("bill_payment")
}
func (r *recorder) MakeCashWithdrawalOperation(context.Context, string, string) (model.Operation, error) {
	return r.op("cash_withdrawal")
}

func (r *recorder) GetAccounts(context.Context, string) ([]model.Account, error) { return nil, nil }

func (r *recorder) account(name string) (model.Account, error) {
	r.called = name
	return model.Account{}, nil
}

func (r *recorder) OpenDepositAccount(context.Context, string) (model.Account, error) {
	return r.account("deposit")
}
func (r *recorder) OpenSavingsAccount(context.Context, string) (model.Account, error) {
	return r.account("savings")
}
func (r *recorder) OpenDebitCardAccount(context.Context, string) (model.Account, error) {
	return r.account("debit_card")
}
func (r *recorder) OpenCreditCardAccount(context.Context, string) (model.Account, error) {
	return r.account("credit_card")
}

func (r *recorder) IssueVirtualCard(context.Context, string, string) (model.Card, error) {
	r.called = "virtual"
	return model.Card{}, nil
}
func (r *recorder) IssuePhysicalCard(context.Context, string, string) (model.Card, error) {
	r.called = "physical"
	return model.Card{}, nil
}

func TestDispatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ops := map[model.OperationType]string{
		model.OperationTypeFee:            "fee",
		model.OperationTypeTopUp:          "top_up",
		model.OperationTypeCashback:       "cashback",
		model.OperationTypeTransfer:       "transfer",
		model.OperationTypePurchase:       "purchase",
		model.OperationTypeBillPayment:    "bill_payment",
		model.OperationTypeCashWithdrawal: "cash_withdrawal",
	}
	for opType, want := range ops {
		r := &recorder{}
		if _, err := MakeOperation(ctx, r, opType, "card", "acc"); err != nil {
			t.Fatalf("MakeOperation(%s) error = %v", opType, err)
		}
		if r.called != want {
			t.Errorf("MakeOperation(%s) called %q, want %q", opType, r.called, want)
		}
	}
	if _, err := MakeOperation(ctx, &recorder{}, "REFUND", "card", "acc"); err == nil {
		t.Error("MakeOperation(REFUND) succeeded")
	}

	accounts := map[model.AccountType]string{
		model.AccountTypeDeposit:    "deposit",
		model.AccountTypeSavings:    "savings",
		model.AccountTypeDebitCard:  "debit_card",
		model.AccountTypeCreditCard: "credit_card",
	}
	for accountType, want := range accounts {
		r := &recorder{}
		if _, err := OpenAccount(ctx, r, accountType, "user"); err != nil {
			t.Fatalf("OpenAccount(%s) error = %v", accountType, err)
		}
		if r.called != want {
			t.Errorf("OpenAccount(%s) called %q, want %q", accountType, r.called, want)
		}
	}
	if _, err := OpenAccount(ctx, &recorder{}, "LOAN", "user"); err == nil {
		t.Error("OpenAccount(LOAN) succeeded")
	}

	for cardType, want := range map[model.CardType]string{model.CardTypeVirtual: "virtual", model.CardTypePhysical: "physical"} {
		r := &recorder{}
		if _, err := IssueCard(ctx, r, cardType, "user", "acc"); err != nil {
			t.Fatalf("IssueCard(%s) error = %v", cardType, err)
		}
		if r.called != want {
			t.Errorf("IssueCard(%s) called %q, want %q", cardType, r.called, want)
		}
	}
}
