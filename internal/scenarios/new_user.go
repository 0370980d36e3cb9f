package scenarios

import (
	"context"

	"github.com/gatewayperf/gatewayperf/internal/loadtest"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

func init() {
	register(Scenario{
		Name:        NewUserGetAccounts,
		Description: "create users, open deposit accounts and list accounts (weights 2/2/6)",
		NewUser:     newUserGetAccounts,
	})
	register(Scenario{
		Name:        NewUserIssuePhysicalCard,
		Description: "create a user, open a debit card account, issue a physical card",
		NewUser:     newUserIssuePhysicalCard,
	})
	register(Scenario{
		Name:        NewUserOpenDebitCardAccount,
		Description: "create a user on start, then keep opening debit card accounts",
		NewUser:     newUserOpenDebitCardAccount,
	})
	register(Scenario{
		Name:        NewUserMakePurchaseOperation,
		Description: "create a user, open a credit card account, make a purchase, fetch its receipt",
		NewUser:     newUserMakePurchaseOperation,
	})
	register(Scenario{
		Name:        NewUserGetDocuments,
		Description: "create a user, open a savings account, fetch tariff and contract",
		NewUser:     newUserGetDocuments,
	})
}

func newUserGetAccounts(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	var userID string

	return loadtest.Weighted(
		loadtest.Task{Name: "create_user", Weight: 2, Run: func(ctx context.Context) error {
			user, err := gw.CreateUser(ctx)
			if err != nil {
				return err
			}
			userID = user.ID
			return nil
		}},
		loadtest.Task{Name: "open_deposit_account", Weight: 2, Run: func(ctx context.Context) error {
			if userID == "" {
				return nil
			}
			_, err := gw.OpenDepositAccount(ctx, userID)
			return err
		}},
		loadtest.Task{Name: "get_accounts", Weight: 6, Run: func(ctx context.Context) error {
			if userID == "" {
				return nil
			}
			_, err := gw.GetAccounts(ctx, userID)
			return err
		}},
	)
}

func newUserIssuePhysicalCard(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	var (
		user    *model.User
		account *model.Account
	)

	return loadtest.Sequential(
		loadtest.Task{Name: "create_user", Run: func(ctx context.Context) error {
			user, account = nil, nil
			created, err := gw.CreateUser(ctx)
			if err != nil {
				return err
			}
			user = &created
			return nil
		}},
		loadtest.Task{Name: "open_debit_card_account", Run: func(ctx context.Context) error {
			if user == nil {
				return nil
			}
			opened, err := gw.OpenDebitCardAccount(ctx, user.ID)
			if err != nil {
				return err
			}
			account = &opened
			return nil
		}},
		loadtest.Task{Name: "issue_physical_card", Run: func(ctx context.Context) error {
			if user == nil || account == nil {
				return nil
			}
			_, err := gw.IssuePhysicalCard(ctx, user.ID, account.ID)
			return err
		}},
	)
}

func newUserOpenDebitCardAccount(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	var userID string

	return loadtest.Weighted(
		loadtest.Task{Name: "open_debit_card_account", Run: func(ctx context.Context) error {
			if userID == "" {
				return nil
			}
			_, err := gw.OpenDebitCardAccount(ctx, userID)
			return err
		}},
	).WithOnStart(func(ctx context.Context) error {
		user, err := gw.CreateUser(ctx)
		if err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
}

func newUserMakePurchaseOperation(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	var (
		userID    string
		account   *model.Account
		operation *model.Operation
	)

	return loadtest.Sequential(
		loadtest.Task{Name: "create_user", Run: func(ctx context.Context) error {
			userID, account, operation = "", nil, nil
			user, err := gw.CreateUser(ctx)
			if err != nil {
				return err
			}
			userID = user.ID
			return nil
		}},
		loadtest.Task{Name: "open_credit_card_account", Run: func(ctx context.Context) error {
			if userID == "" {
				return nil
			}
			opened, err := gw.OpenCreditCardAccount(ctx, userID)
			if err != nil {
				return err
			}
			account = &opened
			return nil
		}},
		loadtest.Task{Name: "make_purchase_operation", Run: func(ctx context.Context) error {
			if account == nil {
				return nil
			}
			card, err := account.FirstCard()
			if err != nil {
				return nil
			}
			op, err := gw.MakePurchaseOperation(ctx, card.ID, account.ID)
			if err != nil {
				return err
			}
			operation = &op
			return nil
		}},
		loadtest.Task{Name: "get_operation_receipt", Run: func(ctx context.Context) error {
			if operation == nil {
				return nil
			}
			_, err := gw.GetOperationReceipt(ctx, operation.ID)
			return err
		}},
	)
}

func newUserGetDocuments(env Env) *loadtest.TaskSet {
	gw := env.Gateway
	var (
		userID    string
		accountID string
	)

	return loadtest.Sequential(
		loadtest.Task{Name: "create_user", Run: func(ctx context.Context) error {
			userID, accountID = "", ""
			user, err := gw.CreateUser(ctx)
			if err != nil {
				return err
			}
			userID = user.ID
			return nil
		}},
		loadtest.Task{Name: "open_savings_account", Run: func(ctx context.Context) error {
			if userID == "" {
				return nil
			}
			account, err := gw.OpenSavingsAccount(ctx, userID)
			if err != nil {
				return err
			}
			accountID = account.ID
			return nil
		}},
		loadtest.Task{Name: "get_tariff_document", Run: func(ctx context.Context) error {
			if accountID == "" {
				return nil
			}
			_, err := gw.GetTariffDocument(ctx, accountID)
			return err
		}},
		loadtest.Task{Name: "get_contract_document", Run: func(ctx context.Context) error {
			if accountID == "" {
				return nil
			}
			_, err := gw.GetContractDocument(ctx, accountID)
			return err
		}},
	)
}
