package seeds

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownScenario is returned by Lookup.
var ErrUnknownScenario = errors.New("unknown seeds scenario")

// Scenario names a plan whose result is stored under that name.
type Scenario struct {
	Name string
	Plan Plan
}

// Build runs the plan and saves the result. Nothing is saved when the build fails.
func (s Scenario) Build(ctx context.Context, builder *Builder, store Store) (*Result, error) {
	result, err := builder.Build(ctx, s.Plan)
	if err != nil {
		return nil, fmt.Errorf("build %s seeds: %w", s.Name, err)
	}
	if err := store.Save(ctx, s.Name, result); err != nil {
		return nil, fmt.Errorf("save %s seeds: %w", s.Name, err)
	}
	return result, nil
}

// Load reads the previously built result of the scenario.
func (s Scenario) Load(ctx context.Context, store Store) (*Result, error) {
	return store.Load(ctx, s.Name)
}

// Names of the built-in scenarios.
const (
	ExistingUserGetOperations         = "existing_user_get_operations"
	ExistingUserGetDocuments          = "existing_user_get_documents"
	ExistingUserIssueVirtualCard      = "existing_user_issue_virtual_card"
	ExistingUserMakePurchaseOperation = "existing_user_make_purchase_operation"
	ExistingUserGetAccounts           = "existing_user_get_accounts"
)

const defaultUsers = 300

var registry = map[string]Scenario{
	ExistingUserGetOperations: {
		Name: ExistingUserGetOperations,
		Plan: Plan{Users: UsersPlan{
			Count: defaultUsers,
			CreditCardAccounts: AccountsPlan{
				Count:                    1,
				PurchaseOperations:       OperationsPlan{Count: 5},
				TopUpOperations:          OperationsPlan{Count: 1},
				CashWithdrawalOperations: OperationsPlan{Count: 1},
			},
		}},
	},
	ExistingUserGetDocuments: {
		Name: ExistingUserGetDocuments,
		Plan: Plan{Users: UsersPlan{
			Count:           defaultUsers,
			SavingsAccounts: AccountsPlan{Count: 1},
			DepositAccounts: AccountsPlan{Count: 1},
		}},
	},
	ExistingUserIssueVirtualCard: {
		Name: ExistingUserIssueVirtualCard,
		Plan: Plan{Users: UsersPlan{
			Count:             defaultUsers,
			DebitCardAccounts: AccountsPlan{Count: 1},
		}},
	},
	ExistingUserMakePurchaseOperation: {
		Name: ExistingUserMakePurchaseOperation,
		Plan: Plan{Users: UsersPlan{
			Count:              defaultUsers,
			CreditCardAccounts: AccountsPlan{Count: 1},
		}},
	},
	ExistingUserGetAccounts: {
		Name: ExistingUserGetAccounts,
		Plan: Plan{Users: UsersPlan{
			Count:              defaultUsers,
			DepositAccounts:    AccountsPlan{Count: 1},
			SavingsAccounts:    AccountsPlan{Count: 1},
			DebitCardAccounts:  AccountsPlan{Count: 1},
			CreditCardAccounts: AccountsPlan{Count: 1},
		}},
	},
}

// Lookup returns the built-in scenario called name.
func Lookup(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// Names returns the built-in scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
