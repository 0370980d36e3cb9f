package demos_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gatewayperf/gatewayperf/internal/clients/httpgw"
	"github.com/gatewayperf/gatewayperf/internal/demos"
	"github.com/gatewayperf/gatewayperf/internal/fakegateway"
	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/testutil"
)

func gateways(t *testing.T) map[string]gateway.Gateway {
	return map[string]gateway.Gateway{
		"http": testutil.NewHTTPGateway(t, fakegateway.NewBank()),
		"grpc": testutil.NewGRPCGateway(t, fakegateway.NewBank()),
	}
}

func TestFlows(t *testing.T) {
	t.Parallel()

	wantLabels := map[string][]string{
		demos.CreateUser:            {"Create user response", "Get user response"},
		demos.OpenDepositAccount:    {"Create user response", "Open DEPOSIT account response"},
		demos.MakeTopUpOperation:    {"Open DEBIT_CARD account response", "Make top up operation response"},
		demos.MakePurchaseOperation: {"Make purchase operation response", "Get operation response", `"category"`},
		demos.GetOperationReceipt:   {"Make top up operation response", "Get operation receipt response", "/receipts/"},
		demos.IssuePhysicalCard:     {"Issue physical card response", `"PHYSICAL"`},
		demos.GetDocuments:          {"Get tariff document response", "Get contract document response"},
	}

	if got := len(demos.Flows()); got != len(wantLabels) {
		t.Fatalf("Flows() = %d flows, want %d", got, len(wantLabels))
	}

	for protocol, gw := range gateways(t) {
		for _, flow := range demos.Flows() {
			t.Run(protocol+"/"+flow.Name, func(t *testing.T) {
				var out bytes.Buffer
				if err := demos.New(gw, &out).Run(context.Background(), flow.Name); err != nil {
					t.Fatalf("Run(%s) error = %v", flow.Name, err)
				}
				text := out.String()
				if !strings.HasPrefix(text, "# "+flow.Name+" over "+protocol) {
					t.Errorf("output header = %q", strings.SplitN(text, "\n", 2)[0])
				}
				for _, label := range wantLabels[flow.Name] {
					if !strings.Contains(text, label) {
						t.Errorf("output missing %q:\n%s", label, text)
					}
				}
			})
		}
	}
}

func TestRun_UnknownFlow(t *testing.T) {
	t.Parallel()

	gw := testutil.NewHTTPGateway(t, fakegateway.NewBank())
	err := demos.New(gw, &bytes.Buffer{}).Run(context.Background(), "nope")
	if !errors.Is(err, demos.ErrUnknownFlow) {
		t.Errorf("Run(nope) error = %v, want ErrUnknownFlow", err)
	}
}

func TestRun_StopsOnGatewayError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"maintenance"}`))
	})
	gw := testutil.NewHTTPGatewayWith(t, handler)

	var out bytes.Buffer
	err := demos.New(gw, &out).Run(context.Background(), demos.GetDocuments)

	var statusErr *httpgw.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("Run() error = %v, want 503 StatusError", err)
	}
	if !strings.HasPrefix(err.Error(), "create user: ") {
		t.Errorf("Run() error = %q, want create user context", err)
	}
	if strings.Contains(out.String(), "response:") {
		t.Errorf("printed a response after failure:\n%s", out.String())
	}
}
