// Package demos holds short end-to-end flows that call the gateway and
// print every response. They are the quickest way to check a gateway
// deployment by hand.
package demos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// ErrUnknownFlow is returned by Run for unregistered names.
var ErrUnknownFlow = errors.New("unknown demo flow")

// Flow names.
const (
	CreateUser            = "create_user"
	OpenDepositAccount    = "open_deposit_account"
	MakeTopUpOperation    = "make_top_up_operation"
	MakePurchaseOperation = "make_purchase_operation"
	GetOperationReceipt   = "get_operation_receipt"
	IssuePhysicalCard     = "issue_physical_card"
	GetDocuments          = "get_documents"
)

// Flow is one demo.
type Flow struct {
	Name        string
	Description string
	Run         func(ctx context.Context, d *Demo) error
}

var flows = map[string]Flow{
	CreateUser: {
		Name:        CreateUser,
		Description: "create a user and read it back",
		Run:         createUser,
	},
	OpenDepositAccount: {
		Name:        OpenDepositAccount,
		Description: "create a user and open a deposit account",
		Run:         openDepositAccount,
	},
	MakeTopUpOperation: {
		Name:        MakeTopUpOperation,
		Description: "top up a new debit card account",
		Run:         makeTopUpOperation,
	},
	MakePurchaseOperation: {
		Name:        MakePurchaseOperation,
		Description: "make a purchase on a new credit card account and read it back",
		Run:         makePurchaseOperation,
	},
	GetOperationReceipt: {
		Name:        GetOperationReceipt,
		Description: "top up a new debit card account and fetch the receipt",
		Run:         getOperationReceipt,
	},
	IssuePhysicalCard: {
		Name:        IssuePhysicalCard,
		Description: "issue a physical card on a new debit card account",
		Run:         issuePhysicalCard,
	},
	GetDocuments: {
		Name:        GetDocuments,
		Description: "fetch tariff and contract of a new credit card account",
		Run:         getDocuments,
	},
}

// Flows returns every flow sorted by name.
func Flows() []Flow {
	out := make([]Flow, 0, len(flows))
	for _, f := range flows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Demo runs flows against one gateway.
type Demo struct {
	gw  gateway.Gateway
	out io.Writer
}

// New returns a Demo printing to out.
func New(gw gateway.Gateway, out io.Writer) *Demo {
	return &Demo{gw: gw, out: out}
}

// Run executes the named flow. It stops at the first failing call.
func (d *Demo) Run(ctx context.Context, name string) error {
	f, ok := flows[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFlow, name)
	}
	fmt.Fprintf(d.out, "# %s over %s\n", f.Name, d.gw.Protocol())
	return f.Run(ctx, d)
}

func (d *Demo) print(label string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}
	_, err = fmt.Fprintf(d.out, "%s response: %s\n", label, data)
	return err
}

func (d *Demo) newUser(ctx context.Context) (model.User, error) {
	user, err := d.gw.CreateUser(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, d.print("Create user", user)
}

func (d *Demo) newAccount(ctx context.Context, t model.AccountType, userID string) (model.Account, error) {
	account, err := gateway.OpenAccount(ctx, d.gw, t, userID)
	if err != nil {
		return model.Account{}, fmt.Errorf("open %s account: %w", t, err)
	}
	return account, d.print(fmt.Sprintf("Open %s account", t), account)
}

func (d *Demo) newCardAccount(ctx context.Context, t model.AccountType) (model.Account, model.Card, error) {
	user, err := d.newUser(ctx)
	if err != nil {
		return model.Account{}, model.Card{}, err
	}
	account, err := d.newAccount(ctx, t, user.ID)
	if err != nil {
		return model.Account{}, model.Card{}, err
	}
	card, err := account.FirstCard()
	if err != nil {
		return model.Account{}, model.Card{}, fmt.Errorf("account %s: %w", account.ID, err)
	}
	return account, *card, nil
}

func createUser(ctx context.Context, d *Demo) error {
	user, err := d.newUser(ctx)
	if err != nil {
		return err
	}
	got, err := d.gw.GetUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return d.print("Get user", got)
}

func openDepositAccount(ctx context.Context, d *Demo) error {
	user, err := d.newUser(ctx)
	if err != nil {
		return err
	}
	_, err = d.newAccount(ctx, model.AccountTypeDeposit, user.ID)
	return err
}

func makeTopUpOperation(ctx context.Context, d *Demo) error {
	account, card, err := d.newCardAccount(ctx, model.AccountTypeDebitCard)
	if err != nil {
		return err
	}
	op, err := d.gw.MakeTopUpOperation(ctx, card.ID, account.ID)
	if err != nil {
		return fmt.Errorf("make top up operation: %w", err)
	}
	return d.print("Make top up operation", op)
}

func makePurchaseOperation(ctx context.Context, d *Demo) error {
	account, card, err := d.newCardAccount(ctx, model.AccountTypeCreditCard)
	if err != nil {
		return err
	}
	op, err := d.gw.MakePurchaseOperation(ctx, card.ID, account.ID)
	if err != nil {
		return fmt.Errorf("make purchase operation: %w", err)
	}
	if err := d.print("Make purchase operation", op); err != nil {
		return err
	}
	got, err := d.gw.GetOperation(ctx, op.ID)
	if err != nil {
		return fmt.Errorf("get operation: %w", err)
	}
	return d.print("Get operation", got)
}

func getOperationReceipt(ctx context.Context, d *Demo) error {
	account, card, err := d.newCardAccount(ctx, model.AccountTypeDebitCard)
	if err != nil {
		return err
	}
	op, err := d.gw.MakeTopUpOperation(ctx, card.ID, account.ID)
	if err != nil {
		return fmt.Errorf("make top up operation: %w", err)
	}
	if err := d.print("Make top up operation", op); err != nil {
		return err
	}
	receipt, err := d.gw.GetOperationReceipt(ctx, op.ID)
	if err != nil {
		return fmt.Errorf("get operation receipt: %w", err)
	}
	return d.print("Get operation receipt", receipt)
}

func issuePhysicalCard(ctx context.Context, d *Demo) error {
	user, err := d.newUser(ctx)
	if err != nil {
		return err
	}
	account, err := d.newAccount(ctx, model.AccountTypeDebitCard, user.ID)
	if err != nil {
		return err
	}
	card, err := d.gw.IssuePhysicalCard(ctx, user.ID, account.ID)
	if err != nil {
		return fmt.Errorf("issue physical card: %w", err)
	}
	return d.print("Issue physical card", card)
}

func getDocuments(ctx context.Context, d *Demo) error {
	user, err := d.newUser(ctx)
	if err != nil {
		return err
	}
	account, err := d.newAccount(ctx, model.AccountTypeCreditCard, user.ID)
	if err != nil {
		return err
	}
	tariff, err := d.gw.GetTariffDocument(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("get tariff document: %w", err)
	}
	if err := d.print("Get tariff document", tariff); err != nil {
		return err
	}
	contract, err := d.gw.GetContractDocument(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("get contract document: %w", err)
	}
	return d.print("Get contract document", contract)
}
