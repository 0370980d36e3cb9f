// Package scenarios holds the load scenarios run against the gateway.
//
// New-user scenarios create everything they touch. Existing-user scenarios
// replay the users a seeds run created earlier: every virtual user takes the
// next seeded user on start.
package scenarios

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/loadtest"
	"github.com/gatewayperf/gatewayperf/internal/seeds"
)

var (
	// ErrUnknownScenario is returned by Lookup.
	ErrUnknownScenario = errors.New("unknown load scenario")
	// ErrSeedsRequired is returned when a seed-driven scenario gets no users.
	ErrSeedsRequired = errors.New("scenario needs seeded users")
)

// Env is what a scenario's virtual users share. Only the gateway client and
// the read-only seeds result are shared; per-user state lives in each task set.
type Env struct {
	Gateway gateway.Gateway
	Seeds   *seeds.Result
}

// Scenario describes one load profile.
type Scenario struct {
	Name        string
	Description string
	// Seeds names the seeds scenario the run replays; empty for new-user
	// scenarios.
	Seeds string
	// NewUser builds the task set of one virtual user.
	NewUser func(env Env) *loadtest.TaskSet
}

// NeedsSeeds reports whether the scenario replays seeded users.
func (s Scenario) NeedsSeeds() bool { return s.Seeds != "" }

// Factory returns the loadtest.UserFactory for env.
func (s Scenario) Factory(env Env) (loadtest.UserFactory, error) {
	if env.Gateway == nil {
		return nil, errors.New("scenario needs a gateway")
	}
	if s.NeedsSeeds() && (env.Seeds == nil || env.Seeds.UserCount() == 0) {
		return nil, fmt.Errorf("%s: %w from %s", s.Name, ErrSeedsRequired, s.Seeds)
	}
	return func(int) *loadtest.TaskSet { return s.NewUser(env) }, nil
}

// Scenario names.
const (
	NewUserGetAccounts                = "new_user_get_accounts"
	NewUserIssuePhysicalCard          = "new_user_issue_physical_card"
	NewUserOpenDebitCardAccount       = "new_user_open_debit_card_account"
	NewUserMakePurchaseOperation      = "new_user_make_purchase_operation"
	NewUserGetDocuments               = "new_user_get_documents"
	ExistingUserGetOperations         = "existing_user_get_operations"
	ExistingUserGetDocuments          = "existing_user_get_documents"
	ExistingUserIssueVirtualCard      = "existing_user_issue_virtual_card"
	ExistingUserMakePurchaseOperation = "existing_user_make_purchase_operation"
	ExistingUserGetAccounts           = "existing_user_get_accounts"
)

var registry = map[string]Scenario{}

func register(s Scenario) {
	if _, dup := registry[s.Name]; dup {
		panic("scenarios: duplicate scenario " + s.Name)
	}
	registry[s.Name] = s
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// All returns every scenario sorted by name.
func All() []Scenario {
	out := make([]Scenario, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered names in order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
