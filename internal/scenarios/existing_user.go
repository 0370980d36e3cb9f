package scenarios

import (
	"context"
	"math/rand/v2"

	"github.com/gatewayperf/gatewayperf/internal/loadtest"
	"github.com/gatewayperf/gatewayperf/internal/model"
	"github.com/gatewayperf/gatewayperf/internal/seeds"
)

func init() {
	register(Scenario{
		Name:        ExistingUserGetOperations,
		Description: "list operations, summaries and receipts of seeded credit card accounts",
		Seeds:       seeds.ExistingUserGetOperations,
		NewUser:     existingUserGetOperations,
	})
	register(Scenario{
		Name:        ExistingUserGetDocuments,
		Description: "fetch tariffs and contracts of seeded savings and deposit accounts",
		Seeds:       seeds.ExistingUserGetDocuments,
		NewUser:     existingUserGetDocuments,
	})
	register(Scenario{
		Name:        ExistingUserIssueVirtualCard,
		Description: "issue virtual cards on seeded debit card accounts",
		Seeds:       seeds.ExistingUserIssueVirtualCard,
		NewUser:     existingUserIssueVirtualCard,
	})
	register(Scenario{
		Name:        ExistingUserMakePurchaseOperation,
		Description: "make purchases with the cards of seeded credit card accounts",
		Seeds:       seeds.ExistingUserMakePurchaseOperation,
		NewUser:     existingUserMakePurchaseOperation,
	})
	register(Scenario{
		Name:        ExistingUserGetAccounts,
		Description: "list the accounts of seeded users",
		Seeds:       seeds.ExistingUserGetAccounts,
		NewUser:     existingUserGetAccounts,
	})
}

// seededUser takes the next seeded user when the virtual user starts.
type seededUser struct {
	result *seeds.Result
	user   *seeds.UserResult
}

func (s *seededUser) onStart(context.Context) error {
	if u, ok := s.result.GetNextUser(); ok {
		s.user = &u
	}
	return nil
}

func (s *seededUser) account(t model.AccountType) (seeds.AccountResult, bool) {
	if s.user == nil {
		return seeds.AccountResult{}, false
	}
	return s.user.FirstAccount(t)
}

func existingUserGetOperations(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	seeded := &seededUser{result: env.Seeds}

	return loadtest.Weighted(
		loadtest.Task{Name: "get_operations", Weight: 3, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok {
				return nil
			}
			_, err := gw.GetOperations(ctx, account.AccountID)
			return err
		}},
		loadtest.Task{Name: "get_operations_summary", Weight: 2, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok {
				return nil
			}
			_, err := gw.GetOperationsSummary(ctx, account.AccountID)
			return err
		}},
		loadtest.Task{Name: "get_operation_receipt", Weight: 1, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok {
				return nil
			}
			ids := account.OperationIDs()
			if len(ids) == 0 {
				return nil
			}
			_, err := gw.GetOperationReceipt(ctx, ids[rand.IntN(len(ids))])
			return err
		}},
	).WithOnStart(seeded.onStart)
}

func existingUserGetDocuments(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	seeded := &seededUser{result: env.Seeds}

	documents := func(t model.AccountType) func(context.Context) error {
		return func(ctx context.Context) error {
			account, ok := seeded.account(t)
			if !ok {
				return nil
			}
			if _, err := gw.GetTariffDocument(ctx, account.AccountID); err != nil {
				return err
			}
			_, err := gw.GetContractDocument(ctx, account.AccountID)
			return err
		}
	}

	return loadtest.Weighted(
		loadtest.Task{Name: "get_savings_account_documents", Run: documents(model.AccountTypeSavings)},
		loadtest.Task{Name: "get_deposit_account_documents", Run: documents(model.AccountTypeDeposit)},
	).WithOnStart(seeded.onStart)
}

func existingUserIssueVirtualCard(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	seeded := &seededUser{result: env.Seeds}

	return loadtest.Weighted(
		loadtest.Task{Name: "issue_virtual_card", Weight: 3, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeDebitCard)
			if !ok {
				return nil
			}
			_, err := gw.IssueVirtualCard(ctx, seeded.user.UserID, account.AccountID)
			return err
		}},
		loadtest.Task{Name: "get_accounts", Weight: 1, Run: func(ctx context.Context) error {
			if seeded.user == nil {
				return nil
			}
			_, err := gw.GetAccounts(ctx, seeded.user.UserID)
			return err
		}},
	).WithOnStart(seeded.onStart)
}

func existingUserMakePurchaseOperation(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	seeded := &seededUser{result: env.Seeds}

	return loadtest.Weighted(
		loadtest.Task{Name: "make_purchase_operation", Weight: 3, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok || account.CardID == "" {
				return nil
			}
			_, err := gw.MakePurchaseOperation(ctx, account.CardID, account.AccountID)
			return err
		}},
		loadtest.Task{Name: "get_operations", Weight: 2, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok {
				return nil
			}
			_, err := gw.GetOperations(ctx, account.AccountID)
			return err
		}},
		loadtest.Task{Name: "get_operations_summary", Weight: 1, Run: func(ctx context.Context) error {
			account, ok := seeded.account(model.AccountTypeCreditCard)
			if !ok {
				return nil
			}
			_, err := gw.GetOperationsSummary(ctx, account.AccountID)
			return err
		}},
	).WithOnStart(seeded.onStart)
}

func existingUserGetAccounts(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	seeded := &seededUser{result: env.Seeds}

	return loadtest.Weighted(
		loadtest.Task{Name: "get_accounts", Run: func(ctx context.Context) error {
			if seeded.user == nil {
				return nil
			}
			_, err := gw.GetAccounts(ctx, seeded.user.UserID)
			return err
		}},
	).WithOnStart(seeded.onStart)
}
