// Package fakegateway is an in-memory stand-in for the banking gateway.
//
// Bank holds the state; NewHTTPHandler and RegisterGRPC expose it over the
// same HTTP and gRPC contracts the real gateway serves, so seeds, demos and
// load scenarios can run locally and in tests.
package fakegateway

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// Bank errors. Transports map them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// DefaultBaseURL prefixes document and receipt URLs.
const DefaultBaseURL = "http://localhost:8003"

type accountRecord struct {
	userID  string
	account model.Account
	balance decimal.Decimal
	ops     []string
}

// Bank is the in-memory gateway state. It is safe for concurrent use.
type Bank struct {
	mu sync.RWMutex

	users    map[string]model.User
	emails   map[string]string
	accounts map[string]*accountRecord
	byUser   map[string][]string
	cards    map[string]string
	ops      map[string]model.Operation

	baseURL string
	fake    *fakers.Fake
	now     func() time.Time
}

// BankOption configures a Bank.
type BankOption func(*Bank)

// WithBaseURL sets the prefix of document and receipt URLs.
func WithBaseURL(baseURL string) BankOption {
	return func(b *Bank) { b.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithClock replaces time.Now for operation timestamps.
func WithClock(now func() time.Time) BankOption {
	return func(b *Bank) { b.now = now }
}

// WithCardFaker sets the generator of card numbers, pins and networks.
func WithCardFaker(fake *fakers.Fake) BankOption {
	return func(b *Bank) { b.fake = fake }
}

// NewBank creates an empty Bank.
func NewBank(opts ...BankOption) *Bank {
	b := &Bank{
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
		accounts: make(map[string]*accountRecord),
		byUser:   make(map[string][]string),
		cards:    make(map[string]string),
		ops:      make(map[string]model.Operation),
		baseURL:  DefaultBaseURL,
		fake:     fakers.Default,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ping reports the bank as ready. It satisfies the readiness checker.
func (b *Bank) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateUser registers u under a new id. Emails are unique.
func (b *Bank) CreateUser(u model.User) (model.User, error) {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return model.User{}, fmt.Errorf("%w: email %q", ErrInvalidArgument, u.Email)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, taken := b.emails[key]; taken {
		return model.User{}, fmt.Errorf("%w: email %q already registered", ErrConflict, u.Email)
	}

	u.ID = uuid.NewString()
	b.users[u.ID] = u
	b.emails[key] = u.ID
	return u, nil
}

// GetUser returns the user with id.
func (b *Bank) GetUser(id string) (model.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	u, ok := b.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %q", ErrNotFound, id)
	}
	return u, nil
}

// OpenAccount opens an active account for userID. Debit and credit card
// accounts are opened with one virtual card.
func (b *Bank) OpenAccount(userID string, accountType model.AccountType) (model.Account, error) {
	if !accountType.IsValid() {
		return model.Account{}, fmt.Errorf("%w: account type %q", ErrInvalidArgument, accountType)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[userID]
	if !ok {
		return model.Account{}, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}

	rec := &accountRecord{
		userID: userID,
		account: model.Account{
			ID:     uuid.NewString(),
			Type:   accountType,
			Cards:  []model.Card{},
			Status: model.AccountStatusActive,
		},
	}
	if accountType == model.AccountTypeDebitCard || accountType == model.AccountTypeCreditCard {
		rec.account.Cards = append(rec.account.Cards, b.newCard(user, rec.account.ID, model.CardTypeVirtual))
	}

	b.accounts[rec.account.ID] = rec
	b.byUser[userID] = append(b.byUser[userID], rec.account.ID)
	for _, c := range rec.account.Cards {
		b.cards[c.ID] = rec.account.ID
	}
	return b.snapshot(rec), nil
}

// GetAccounts returns the accounts of userID in opening order.
func (b *Bank) GetAccounts(userID string) ([]model.Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.users[userID]; !ok {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	accounts := make([]model.Account, 0, len(b.byUser[userID]))
	for _, id := range b.byUser[userID] {
		accounts = append(accounts, b.snapshot(b.accounts[id]))
	}
	return accounts, nil
}

// IssueCard adds a card to an account owned by userID.
func (b *Bank) IssueCard(userID, accountID string, cardType model.CardType) (model.Card, error) {
	if !cardType.IsValid() {
		return model.Card{}, fmt.Errorf("%w: card type %q", ErrInvalidArgument, cardType)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, err := b.ownedAccount(userID, accountID)
	if err != nil {
		return model.Card{}, err
	}

	card := b.newCard(b.users[userID], accountID, cardType)
	rec.account.Cards = append(rec.account.Cards, card)
	b.cards[card.ID] = accountID
	return card, nil
}

// MakeOperation records op on its account. The card must belong to the
// account; only completed operations move the balance.
func (b *Bank) MakeOperation(op model.Operation) (model.Operation, error) {
	if err := validateOperation(op); err != nil {
		return model.Operation{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.accounts[op.AccountID]
	if !ok {
		return model.Operation{}, fmt.Errorf("%w: account %q", ErrNotFound, op.AccountID)
	}
	if owner, ok := b.cards[op.CardID]; !ok || owner != op.AccountID {
		return model.Operation{}, fmt.Errorf("%w: card %q on account %q", ErrNotFound, op.CardID, op.AccountID)
	}
	if rec.account.Status != model.AccountStatusActive {
		return model.Operation{}, fmt.Errorf("%w: account %q is %s", ErrInvalidArgument, op.AccountID, rec.account.Status)
	}

	op.ID = ulid.Make().String()
	op.CreatedAt = b.now().UTC()
	if op.Type != model.OperationTypePurchase {
		op.Category = ""
	}

	if op.Status == model.OperationStatusCompleted {
		amount := decimal.NewFromFloat(op.Amount)
		if op.Type.IsDebit() {
			rec.balance = rec.balance.Sub(amount)
		} else {
			rec.balance = rec.balance.Add(amount)
		}
	}

	b.ops[op.ID] = op
	rec.ops = append(rec.ops, op.ID)
	return op, nil
}

// GetOperation returns the operation with id.
func (b *Bank) GetOperation(id string) (model.Operation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	op, ok := b.ops[id]
	if !ok {
		return model.Operation{}, fmt.Errorf("%w: operation %q", ErrNotFound, id)
	}
	return op, nil
}

// GetOperations returns the operations of accountID ordered by id, which
// is creation order.
func (b *Bank) GetOperations(accountID string) ([]model.Operation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %q", ErrNotFound, accountID)
	}
	ops := make([]model.Operation, 0, len(rec.ops))
	for _, id := range rec.ops {
		ops = append(ops, b.ops[id])
	}
	slices.SortFunc(ops, func(a, c model.Operation) int { return strings.Compare(a.ID, c.ID) })
	return ops, nil
}

// GetOperationsSummary totals the completed operations of accountID.
// Cashback is reported on its own and not counted as received.
func (b *Bank) GetOperationsSummary(accountID string) (model.OperationsSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.accounts[accountID]
	if !ok {
		return model.OperationsSummary{}, fmt.Errorf("%w: account %q", ErrNotFound, accountID)
	}

	var spent, received, cashback decimal.Decimal
	for _, id := range rec.ops {
		op := b.ops[id]
		if op.Status != model.OperationStatusCompleted {
			continue
		}
		amount := decimal.NewFromFloat(op.Amount)
		switch {
		case op.Type == model.OperationTypeCashback:
			cashback = cashback.Add(amount)
		case op.Type.IsDebit():
			spent = spent.Add(amount)
		default:
			received = received.Add(amount)
		}
	}
	return model.OperationsSummary{
		SpentAmount:    spent.InexactFloat64(),
		ReceivedAmount: received.InexactFloat64(),
		CashbackAmount: cashback.InexactFloat64(),
	}, nil
}

// GetOperationReceipt renders the receipt of operation id.
func (b *Bank) GetOperationReceipt(id string) (model.Receipt, error) {
	op, err := b.GetOperation(id)
	if err != nil {
		return model.Receipt{}, err
	}
	return model.Receipt{
		URL: fmt.Sprintf("%s/receipts/%s.pdf", b.baseURL, op.ID),
		Document: fmt.Sprintf("Receipt %s: %s %s %s on card %s at %s",
			op.ID, op.Type, op.Status, decimal.NewFromFloat(op.Amount).StringFixed(2),
			op.CardID, op.CreatedAt.Format(time.RFC3339)),
	}, nil
}

// GetDocument renders the tariff or contract of accountID.
func (b *Bank) GetDocument(accountID string, kind model.DocumentKind) (model.Document, error) {
	if kind != model.DocumentKindTariff && kind != model.DocumentKindContract {
		return model.Document{}, fmt.Errorf("%w: document kind %q", ErrInvalidArgument, kind)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.accounts[accountID]
	if !ok {
		return model.Document{}, fmt.Errorf("%w: account %q", ErrNotFound, accountID)
	}
	user := b.users[rec.userID]
	return model.Document{
		URL: fmt.Sprintf("%s/documents/%s/%s.pdf", b.baseURL, kind, accountID),
		Document: fmt.Sprintf("%s for %s account %s of %s",
			strings.ToUpper(string(kind[:1]))+string(kind[1:]), rec.account.Type, accountID, user.FullName()),
	}, nil
}

// snapshot copies an account so callers never share the card slice.
func (b *Bank) snapshot(rec *accountRecord) model.Account {
	a := rec.account
	a.Cards = slices.Clone(rec.account.Cards)
	a.Balance = rec.balance.InexactFloat64()
	return a
}

func (b *Bank) ownedAccount(userID, accountID string) (*accountRecord, error) {
	if _, ok := b.users[userID]; !ok {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	rec, ok := b.accounts[accountID]
	if !ok || rec.userID != userID {
		return nil, fmt.Errorf("%w: account %q of user %q", ErrNotFound, accountID, userID)
	}
	return rec, nil
}

func (b *Bank) newCard(holder model.User, accountID string, cardType model.CardType) model.Card {
	system := model.CardPaymentSystemVisa
	prefix := "4"
	if b.fake.Integer(0, 1) == 1 {
		system = model.CardPaymentSystemMastercard
		prefix = "5"
	}

	var number strings.Builder
	number.WriteString(prefix)
	for number.Len() < 16 {
		fmt.Fprintf(&number, "%d", b.fake.Integer(0, 9))
	}

	return model.Card{
		ID:            uuid.NewString(),
		Pin:           fmt.Sprintf("%04d", b.fake.Integer(0, 9999)),
		CVV:           fmt.Sprintf("%03d", b.fake.Integer(0, 999)),
		Type:          cardType,
		Status:        model.CardStatusActive,
		AccountID:     accountID,
		CardNumber:    number.String(),
		CardHolder:    holder.FullName(),
		ExpiryDate:    b.now().AddDate(5, 0, 0).Format(time.DateOnly),
		PaymentSystem: system,
	}
}

func validateOperation(op model.Operation) error {
	switch {
	case !op.Type.IsValid():
		return fmt.Errorf("%w: operation type %q", ErrInvalidArgument, op.Type)
	case !op.Status.IsValid():
		return fmt.Errorf("%w: operation status %q", ErrInvalidArgument, op.Status)
	case op.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidArgument, op.Amount)
	case op.CardID == "" || op.AccountID == "":
		return fmt.Errorf("%w: card and account ids are required", ErrInvalidArgument)
	case op.Type == model.OperationTypePurchase && op.Category == "":
		return fmt.Errorf("%w: purchase category is required", ErrInvalidArgument)
	}
	return nil
}
