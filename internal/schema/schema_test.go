package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

func TestCreateUserRequest_RoundTrip(t *testing.T) {
	t.Parallel()

	req := NewCreateUserRequest(fakers.New(7))

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"email"`, `"lastName"`, `"firstName"`, `"middleName"`, `"phoneNumber"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded request %s missing key %s", data, key)
		}
	}

	var got CreateUserRequest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMakePurchaseOperationRequest_FlatAliases(t *testing.T) {
	t.Parallel()

	req := NewMakePurchaseOperationRequest(fakers.New(3), "card-1", "acc-1")

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []string{"status", "amount", "cardId", "accountId", "category"}
	if len(raw) != len(want) {
		t.Errorf("encoded keys = %v, want %v", raw, want)
	}
	for _, key := range want {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}

	var got MakePurchaseOperationRequest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if err := Validate(got); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestGetAccountsResponse_DecodeAndConvert(t *testing.T) {
	t.Parallel()

	body := `{"accounts":[{"id":"acc-1","type":"CREDIT_CARD","status":"ACTIVE","balance":12.5,
		"cards":[{"id":"card-1","pin":"1234","cvv":"123","type":"VIRTUAL","status":"ACTIVE",
		"accountId":"acc-1","cardNumber":"4000","cardHolder":"Anna Smith","expiryDate":"2030-01-01",
		"paymentSystem":"VISA"}]}]}`

	var resp GetAccountsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := Validate(resp); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	got := resp.Accounts[0].ToModel()
	want := model.Account{
		ID:      "acc-1",
		Type:    model.AccountTypeCreditCard,
		Status:  model.AccountStatusActive,
		Balance: 12.5,
		Cards: []model.Card{{
			ID:            "card-1",
			Pin:           "1234",
			CVV:           "123",
			Type:          model.CardTypeVirtual,
			Status:        model.CardStatusActive,
			AccountID:     "acc-1",
			CardNumber:    "4000",
			CardHolder:    "Anna Smith",
			ExpiryDate:    "2030-01-01",
			PaymentSystem: model.CardPaymentSystemVisa,
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToModel() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{
			name:  "valid user",
			value: CreateUserResponse{User: User{ID: "u-1", Email: "a@example.com"}},
		},
		{
			name:    "bad email",
			value:   CreateUserResponse{User: User{ID: "u-1", Email: "nope"}},
			wantErr: true,
		},
		{
			name:    "unknown account type",
			value:   OpenAccountResponse{Account: Account{ID: "a-1", Type: "LOAN", Status: "ACTIVE"}},
			wantErr: true,
		},
		{
			name:    "document without url",
			value:   GetTariffDocumentResponse{Tariff: Document{Document: "text"}},
			wantErr: true,
		},
		{
			name: "valid receipt",
			value: GetOperationReceiptResponse{
				Receipt: OperationReceipt{URL: "http://localhost/receipt.pdf", Document: "text"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("Validate() error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", `"2024-05-01T10:00:00Z"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"naive micros", `"2024-05-01T10:00:00.123456"`, time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC), false},
		{"naive seconds", `"2024-05-01T10:00:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, true},
		{"number", `17`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !ts.Equal(tt.want) {
				t.Errorf("Unmarshal() = %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestOperation_RoundTrip(t *testing.T) {
	t.Parallel()

	op := Operation{
		ID:        "op-1",
		Type:      "PURCHASE",
		Status:    "COMPLETED",
		Amount:    99.99,
		CardID:    "card-1",
		Category:  "taxi",
		CreatedAt: Timestamp{time.Date(2024, 5, 1, 10, 0, 0, 5, time.UTC)},
		AccountID: "acc-1",
	}

	data, err := json.Marshal(OperationResponse{Operation: op})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"createdAt":"2024-05-01T10:00:00.000000005Z"`) {
		t.Errorf("encoded operation %s has unexpected createdAt", data)
	}

	var got OperationResponse
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.Operation.CreatedAt.Equal(op.CreatedAt.Time) {
		t.Errorf("CreatedAt = %v, want %v", got.Operation.CreatedAt, op.CreatedAt)
	}
	if got.Operation.ToModel().Type != model.OperationTypePurchase {
		t.Errorf("ToModel().Type = %s, want PURCHASE", got.Operation.ToModel().Type)
	}
}
