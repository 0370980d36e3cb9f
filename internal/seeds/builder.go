// Package seeds creates reusable gateway data ahead of a load run.
//
// A Plan declares how many users to create and, for every user, how many
// accounts, cards and operations. Builder walks the plan against a
// gateway.Gateway and records every created id in a Result, which a Store
// persists for the load scenarios that need existing users.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// ErrNoCard is returned when a plan makes operations on an account that has
// no card to charge.
var ErrNoCard = errors.New("account has no card for operations")

// Builder executes plans against a gateway, one call at a time.
type Builder struct {
	gw     gateway.Gateway
	logger *slog.Logger
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default.
func NewBuilder(gw gateway.Gateway, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		gw:     gw,
		logger: logger.With("component", "seeds"),
	}
}

// Build creates everything the plan declares and returns the created ids.
// It stops at the first failing call and returns its error; data created
// before the failure is left on the gateway.
func (b *Builder) Build(ctx context.Context, plan Plan) (*Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	b.logger.Info("seeding started",
		"users", plan.Users.Count,
		"calls", plan.Calls(),
		"protocol", b.gw.Protocol(),
	)

	result := &Result{Users: make([]UserResult, 0, plan.Users.Count)}
	for i := 0; i < plan.Users.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		user, err := b.buildUser(ctx, plan.Users)
		if err != nil {
			return nil, fmt.Errorf("seed user %d: %w", i+1, err)
		}
		result.Users = append(result.Users, user)

		b.logger.Debug("user seeded", "n", i+1, "user_id", user.UserID)
	}

	b.logger.Info("seeding finished",
		"users", result.UserCount(),
		"duration", time.Since(start).String(),
	)
	return result, nil
}

func (b *Builder) buildUser(ctx context.Context, plan UsersPlan) (UserResult, error) {
	user, err := b.gw.CreateUser(ctx)
	if err != nil {
		return UserResult{}, fmt.Errorf("create user: %w", err)
	}

	result := UserResult{UserID: user.ID}
	for _, step := range plan.accounts() {
		accounts := result.accountsOf(step.Type)
		*accounts = make([]AccountResult, 0, step.Plan.Count)
		for j := 0; j < step.Plan.Count; j++ {
			account, err := b.buildAccount(ctx, user.ID, step.Type, step.Plan)
			if err != nil {
				return UserResult{}, err
			}
			*accounts = append(*accounts, account)
		}
	}
	return result, nil
}

func (b *Builder) buildAccount(ctx context.Context, userID string, accountType model.AccountType, plan AccountsPlan) (AccountResult, error) {
	account, err := gateway.OpenAccount(ctx, b.gw, accountType, userID)
	if err != nil {
		return AccountResult{}, fmt.Errorf("open %s account: %w", accountType, err)
	}

	result := AccountResult{AccountID: account.ID}
	if card, err := account.FirstCard(); err == nil {
		result.CardID = card.ID
	}

	result.PhysicalCards, err = b.issueCards(ctx, model.CardTypePhysical, plan.PhysicalCards.Count, userID, account.ID)
	if err != nil {
		return AccountResult{}, err
	}
	result.VirtualCards, err = b.issueCards(ctx, model.CardTypeVirtual, plan.VirtualCards.Count, userID, account.ID)
	if err != nil {
		return AccountResult{}, err
	}

	if plan.operationCount() == 0 {
		return result, nil
	}

	cardID := result.chargeCard()
	if cardID == "" {
		return AccountResult{}, fmt.Errorf("%s account %s: %w", accountType, account.ID, ErrNoCard)
	}
	for _, step := range plan.operations() {
		ops := result.operationsOf(step.Type)
		*ops = make([]OperationResult, 0, step.Count)
		for k := 0; k < step.Count; k++ {
			op, err := gateway.MakeOperation(ctx, b.gw, step.Type, cardID, account.ID)
			if err != nil {
				return AccountResult{}, fmt.Errorf("make %s operation: %w", step.Type, err)
			}
			*ops = append(*ops, OperationResult{OperationID: op.ID})
		}
	}
	return result, nil
}

func (b *Builder) issueCards(ctx context.Context, cardType model.CardType, count int, userID, accountID string) ([]CardResult, error) {
	cards := make([]CardResult, 0, count)
	for i := 0; i < count; i++ {
		card, err := gateway.IssueCard(ctx, b.gw, cardType, userID, accountID)
		if err != nil {
			return nil, fmt.Errorf("issue %s card: %w", cardType, err)
		}
		cards = append(cards, CardResult{CardID: card.ID})
	}
	return cards, nil
}

// chargeCard picks the card operations are made with: the account's own
// card, else the first issued one.
func (a AccountResult) chargeCard() string {
	switch {
	case a.CardID != "":
		return a.CardID
	case len(a.PhysicalCards) > 0:
		return a.PhysicalCards[0].CardID
	case len(a.VirtualCards) > 0:
		return a.VirtualCards[0].CardID
	}
	return ""
}
