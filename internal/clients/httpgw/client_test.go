package httpgw

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
	"github.com/gatewayperf/gatewayperf/internal/model"
	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const accountJSON = `{"account":{"id":"acc-1","type":"DEBIT_CARD","status":"ACTIVE","balance":0,
	"cards":[{"id":"card-1","pin":"0000","cvv":"000","type":"VIRTUAL","status":"ACTIVE","accountId":"acc-1",
	"cardNumber":"4000","cardHolder":"Anna Smith","expiryDate":"2030-01-01","paymentSystem":"VISA"}]}}`

func newTestGateway(t *testing.T, handler http.Handler, opts ...Option) *Gateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithFaker(fakers.New(1))}, opts...)
	c, err := New(config.HTTPClientConfig{URL: srv.URL, Timeout: 5 * time.Second}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return NewGateway(c)
}

func TestUsersClient_CreateUser(t *testing.T) {
	t.Parallel()

	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"user":{"id":"u-1","email":"1.anna@example.com","lastName":"Smith",
			"firstName":"Anna","middleName":"Maria","phoneNumber":"+15550100"}}`)
	})

	gw := newTestGateway(t, mux)
	user, err := gw.CreateUser(context.Background())
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID != "u-1" || user.FirstName != "Anna" {
		t.Errorf("CreateUser() = %+v", user)
	}
	for _, key := range []string{"email", "lastName", "firstName", "middleName", "phoneNumber"} {
		if v, _ := got[key].(string); v == "" {
			t.Errorf("request body missing %q: %v", key, got)
		}
	}
}

func TestAccountsClient_GetAccountsQuery(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("userId"); got != "u-1" {
			t.Errorf("userId = %q, want u-1", got)
		}
		_, _ = io.WriteString(w, `{"accounts":[]}`)
	})

	gw := newTestGateway(t, mux)
	accounts, err := gw.GetAccounts(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetAccounts() error = %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("GetAccounts() = %v, want empty", accounts)
	}
}

func TestOperationsClient_MakePurchaseOperation(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/operations/make-purchase-operation", func(w http.ResponseWriter, r *http.Request) {
		var req schema.MakePurchaseOperationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.CardID != "card-1" || req.AccountID != "acc-1" || req.Category == "" {
			t.Errorf("request = %+v", req)
		}
		_, _ = io.WriteString(w, `{"operation":{"id":"op-1","type":"PURCHASE","status":"`+req.Status+`",
			"amount":10,"cardId":"card-1","category":"`+req.Category+`",
			"createdAt":"2024-05-01T10:00:00.123456","accountId":"acc-1"}}`)
	})

	gw := newTestGateway(t, mux)
	op, err := gw.MakePurchaseOperation(context.Background(), "card-1", "acc-1")
	if err != nil {
		t.Fatalf("MakePurchaseOperation() error = %v", err)
	}
	if op.Type != model.OperationTypePurchase || op.CreatedAt.IsZero() {
		t.Errorf("MakePurchaseOperation() = %+v", op)
	}
}

func TestClient_StatusError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"User not found"}`, http.StatusNotFound)
	})

	gw := newTestGateway(t, mux)
	_, err := gw.GetUser(context.Background(), "missing")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetUser() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Route != userRoute {
		t.Errorf("StatusError = %+v", statusErr)
	}
}

func TestClient_InvalidPayload(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/documents/tariff-document/{account_id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"tariff":{"url":"","document":"x"}}`)
	})
	mux.HandleFunc("GET /api/v1/documents/contract-document/{account_id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	gw := newTestGateway(t, mux)
	if _, err := gw.GetTariffDocument(context.Background(), "acc-1"); !errors.Is(err, schema.ErrInvalidResponse) {
		t.Errorf("GetTariffDocument() error = %v, want ErrInvalidResponse", err)
	}
	if _, err := gw.GetContractDocument(context.Background(), "acc-1"); !errors.Is(err, ErrDecodeResponse) {
		t.Errorf("GetContractDocument() error = %v, want ErrDecodeResponse", err)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
	}{
		{"default gateway timeout", 100 * time.Second},
		{"short", 5 * time.Second},
		{"unbounded", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHTTPClient(tt.timeout)
			if c.Timeout != tt.timeout {
				t.Errorf("Timeout = %v, want %v", c.Timeout, tt.timeout)
			}
			tr, ok := c.Transport.(*http.Transport)
			if !ok {
				t.Fatalf("Transport = %T, want *http.Transport", c.Transport)
			}
			if tr.ResponseHeaderTimeout != tt.timeout {
				t.Errorf("ResponseHeaderTimeout = %v, want %v", tr.ResponseHeaderTimeout, tt.timeout)
			}
		})
	}
}

func TestClient_TransportErrorUnchanged(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := New(config.HTTPClientConfig{URL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = NewUsersClient(c).GetUser(context.Background(), "u-1")

	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		t.Errorf("GetUser() error = %T %v, want *url.Error", err, err)
	}
}

func TestWithRecorder(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/accounts/open-debit-card-account", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, accountJSON)
	})
	mux.HandleFunc("GET /api/v1/operations/{operation_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := metrics.NewInMemory()
	gw := newTestGateway(t, mux, WithRecorder(rec))

	account, err := gw.OpenDebitCardAccount(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("OpenDebitCardAccount() error = %v", err)
	}
	if card, err := account.FirstCard(); err != nil || card.ID != "card-1" {
		t.Errorf("FirstCard() = %v, %v", card, err)
	}
	if _, err := gw.GetOperation(context.Background(), "op-42"); err == nil {
		t.Error("GetOperation() error = nil, want status error")
	}

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events))
	}
	if events[0].Name != openDebitCardAccountPath || events[0].ResponseLength != int64(len(accountJSON)) || events[0].Failed() {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Name != operationRoute || events[1].Type != http.MethodGet || !events[1].Failed() {
		t.Errorf("second event = %+v", events[1])
	}
}
