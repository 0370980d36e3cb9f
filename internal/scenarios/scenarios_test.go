package scenarios_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gatewayperf/gatewayperf/internal/clients/grpcgw"
	"github.com/gatewayperf/gatewayperf/internal/clients/httpgw"
	"github.com/gatewayperf/gatewayperf/internal/fakegateway"
	"github.com/gatewayperf/gatewayperf/internal/loadtest"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
	"github.com/gatewayperf/gatewayperf/internal/scenarios"
	"github.com/gatewayperf/gatewayperf/internal/seeds"
	"github.com/gatewayperf/gatewayperf/internal/testutil"
)

// runOnce runs OnStart, then every task once in declaration order.
func runOnce(t *testing.T, ts *loadtest.TaskSet) {
	t.Helper()
	ctx := context.Background()
	if ts.OnStart != nil {
		if err := ts.OnStart(ctx); err != nil {
			t.Fatalf("OnStart() error = %v", err)
		}
	}
	for _, task := range ts.Tasks {
		if err := task.Run(ctx); err != nil {
			t.Fatalf("task %s error = %v", task.Name, err)
		}
	}
}

func requestNames(t *testing.T, rec *metrics.InMemoryRecorder) []string {
	t.Helper()
	var names []string
	for _, ev := range rec.Events() {
		if ev.Failed() {
			t.Errorf("%s %s failed: %v", ev.Type, ev.Name, ev.Err)
		}
		names = append(names, ev.Type+" "+ev.Name)
	}
	return names
}

func TestNewUserScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario string
		want     []string
	}{
		{
			scenario: scenarios.NewUserGetAccounts,
			want: []string{
				"POST /api/v1/users",
				"POST /api/v1/accounts/open-deposit-account",
				"GET /api/v1/accounts",
			},
		},
		{
			scenario: scenarios.NewUserIssuePhysicalCard,
			want: []string{
				"POST /api/v1/users",
				"POST /api/v1/accounts/open-debit-card-account",
				"POST /api/v1/cards/issue-physical-card",
			},
		},
		{
			scenario: scenarios.NewUserOpenDebitCardAccount,
			want: []string{
				"POST /api/v1/users",
				"POST /api/v1/accounts/open-debit-card-account",
			},
		},
		{
			scenario: scenarios.NewUserMakePurchaseOperation,
			want: []string{
				"POST /api/v1/users",
				"POST /api/v1/accounts/open-credit-card-account",
				"POST /api/v1/operations/make-purchase-operation",
				"GET /api/v1/operations/operation-receipt/{operation_id}",
			},
		},
		{
			scenario: scenarios.NewUserGetDocuments,
			want: []string{
				"POST /api/v1/users",
				"POST /api/v1/accounts/open-savings-account",
				"GET /api/v1/documents/tariff-document/{account_id}",
				"GET /api/v1/documents/contract-document/{account_id}",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			s, err := scenarios.Lookup(tt.scenario)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if s.NeedsSeeds() {
				t.Fatalf("%s needs seeds", s.Name)
			}

			rec := metrics.NewInMemory()
			gw := testutil.NewHTTPGateway(t, fakegateway.NewBank(), httpgw.WithRecorder(rec))
			factory, err := s.Factory(scenarios.Env{Gateway: gw})
			if err != nil {
				t.Fatalf("Factory() error = %v", err)
			}

			runOnce(t, factory(1))
			if diff := cmp.Diff(tt.want, requestNames(t, rec)); diff != "" {
				t.Errorf("requests (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewUserScenarios_SkipWithoutState(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		scenarios.NewUserGetAccounts,
		scenarios.NewUserIssuePhysicalCard,
		scenarios.NewUserMakePurchaseOperation,
		scenarios.NewUserGetDocuments,
	} {
		t.Run(name, func(t *testing.T) {
			s, _ := scenarios.Lookup(name)
			rec := metrics.NewInMemory()
			gw := testutil.NewHTTPGateway(t, fakegateway.NewBank(), httpgw.WithRecorder(rec))
			factory, err := s.Factory(scenarios.Env{Gateway: gw})
			if err != nil {
				t.Fatalf("Factory() error = %v", err)
			}

			// Everything after create_user depends on its result.
			ts := factory(1)
			for _, task := range ts.Tasks[1:] {
				if err := task.Run(context.Background()); err != nil {
					t.Errorf("task %s error = %v, want skip", task.Name, err)
				}
			}
			if n := len(rec.Events()); n != 0 {
				t.Errorf("skipped tasks made %d requests", n)
			}
		})
	}
}

func seedFor(t *testing.T, bank *fakegateway.Bank, name string) *seeds.Result {
	t.Helper()
	s, err := seeds.Lookup(name)
	if err != nil {
		t.Fatalf("seeds.Lookup(%q) error = %v", name, err)
	}
	plan := s.Plan
	plan.Users.Count = 2

	gw := testutil.NewHTTPGateway(t, bank)
	result, err := seeds.NewBuilder(gw, testutil.DiscardLogger()).Build(context.Background(), plan)
	if err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return result
}

func TestExistingUserScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario string
		want     []string
	}{
		{
			scenario: scenarios.ExistingUserGetOperations,
			want: []string{
				"GET /api/v1/operations",
				"GET /api/v1/operations/operations-summary",
				"GET /api/v1/operations/operation-receipt/{operation_id}",
			},
		},
		{
			scenario: scenarios.ExistingUserGetDocuments,
			want: []string{
				"GET /api/v1/documents/tariff-document/{account_id}",
				"GET /api/v1/documents/contract-document/{account_id}",
				"GET /api/v1/documents/tariff-document/{account_id}",
				"GET /api/v1/documents/contract-document/{account_id}",
			},
		},
		{
			scenario: scenarios.ExistingUserIssueVirtualCard,
			want: []string{
				"POST /api/v1/cards/issue-virtual-card",
				"GET /api/v1/accounts",
			},
		},
		{
			scenario: scenarios.ExistingUserMakePurchaseOperation,
			want: []string{
				"POST /api/v1/operations/make-purchase-operation",
				"GET /api/v1/operations",
				"GET /api/v1/operations/operations-summary",
			},
		},
		{
			scenario: scenarios.ExistingUserGetAccounts,
			want:     []string{"GET /api/v1/accounts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			s, err := scenarios.Lookup(tt.scenario)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if !s.NeedsSeeds() {
				t.Fatalf("%s does not replay seeds", s.Name)
			}

			bank := fakegateway.NewBank()
			result := seedFor(t, bank, s.Seeds)

			rec := metrics.NewInMemory()
			gw := testutil.NewHTTPGateway(t, bank, httpgw.WithRecorder(rec))
			factory, err := s.Factory(scenarios.Env{Gateway: gw, Seeds: result})
			if err != nil {
				t.Fatalf("Factory() error = %v", err)
			}

			runOnce(t, factory(1))
			if diff := cmp.Diff(tt.want, requestNames(t, rec)); diff != "" {
				t.Errorf("requests (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScenario_FactoryNeedsSeeds(t *testing.T) {
	t.Parallel()

	gw := testutil.NewHTTPGateway(t, fakegateway.NewBank())
	s, _ := scenarios.Lookup(scenarios.ExistingUserGetOperations)

	for name, result := range map[string]*seeds.Result{"nil": nil, "empty": {}} {
		if _, err := s.Factory(scenarios.Env{Gateway: gw, Seeds: result}); !errors.Is(err, scenarios.ErrSeedsRequired) {
			t.Errorf("Factory(%s seeds) error = %v, want ErrSeedsRequired", name, err)
		}
	}
	if _, err := s.Factory(scenarios.Env{}); err == nil {
		t.Error("Factory() without gateway succeeded")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	names := scenarios.Names()
	if len(names) != 10 {
		t.Errorf("Names() = %v, want 10 scenarios", names)
	}
	for _, s := range scenarios.All() {
		if s.Description == "" || s.NewUser == nil {
			t.Errorf("scenario %s is incomplete", s.Name)
		}
		if s.NeedsSeeds() {
			if _, err := seeds.Lookup(s.Seeds); err != nil {
				t.Errorf("scenario %s replays unknown seeds %q", s.Name, s.Seeds)
			}
		}
	}
	if _, err := scenarios.Lookup("nope"); !errors.Is(err, scenarios.ErrUnknownScenario) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownScenario", err)
	}
}

func TestScenario_RunOverGRPC(t *testing.T) {
	t.Parallel()

	stats := loadtest.NewStats(nil)
	gw := testutil.NewGRPCGateway(t, fakegateway.NewBank(), grpcgw.WithRecorder(stats))

	s, _ := scenarios.Lookup(scenarios.NewUserGetAccounts)
	factory, err := s.Factory(scenarios.Env{Gateway: gw})
	if err != nil {
		t.Fatalf("Factory() error = %v", err)
	}

	runner := loadtest.NewRunner(loadtest.Options{
		Users:     3,
		SpawnRate: 100,
		RunTime:   300 * time.Millisecond,
		WaitMin:   time.Millisecond,
		WaitMax:   5 * time.Millisecond,
	}, stats, testutil.DiscardLogger())
	if err := runner.Run(context.Background(), factory); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	total := stats.Total()
	if total.NumRequests == 0 {
		t.Fatal("no requests recorded")
	}
	if total.NumFailures != 0 {
		t.Errorf("failures = %d, want 0: %+v", total.NumFailures, stats.Failures())
	}
	for _, e := range stats.Entries() {
		if e.Method != metrics.TypeGRPC {
			t.Errorf("entry %s %s, want GRPC type", e.Method, e.Name)
		}
	}
	if ex := stats.Exceptions(); len(ex) != 0 {
		t.Errorf("Exceptions() = %+v", ex)
	}
}
