package contracts

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 1, 10, 0, 0, 42, time.UTC)
	tests := []struct {
		name string
		in   Message
		out  Message
	}{
		{
			name: "create user request",
			in: &CreateUserRequest{
				Email:       "anna@example.com",
				LastName:    "Smith",
				FirstName:   "Anna",
				MiddleName:  "Maria",
				PhoneNumber: "+15550100",
			},
			out: &CreateUserRequest{},
		},
		{
			name: "account with cards",
			in: &OpenAccountResponse{Account: &Account{
				ID:      "acc-1",
				Type:    AccountTypeCreditCard,
				Status:  AccountStatusActive,
				Balance: -12.75,
				Cards: []*Card{
					{ID: "card-1", Type: CardTypeVirtual, Status: CardStatusActive, PaymentSystem: CardPaymentSystemVisa},
					{ID: "card-2", Type: CardTypePhysical, Status: CardStatusFrozen, PaymentSystem: CardPaymentSystemMastercard},
				},
			}},
			out: &OpenAccountResponse{},
		},
		{
			name: "operations list",
			in: &GetOperationsResponse{Operations: []*Operation{
				{ID: "op-1", Type: OperationTypePurchase, Status: OperationStatusCompleted, Amount: 10.5, Category: "taxi", CreatedAt: timestamppb.New(created)},
				{ID: "op-2", Type: OperationTypeTopUp, Status: OperationStatusUnspecified, Amount: 1},
			}},
			out: &GetOperationsResponse{},
		},
		{
			name: "purchase request",
			in: &MakePurchaseOperationRequest{
				MakeOperationRequest: MakeOperationRequest{Status: OperationStatusInProgress, Amount: 99.99, CardID: "card-1", AccountID: "acc-1"},
				Category:             "gas",
			},
			out: &MakePurchaseOperationRequest{},
		},
		{
			name: "summary",
			in:   &GetOperationsSummaryResponse{Summary: &OperationsSummary{SpentAmount: 3, ReceivedAmount: 2, CashbackAmount: 1}},
			out:  &GetOperationsSummaryResponse{},
		},
		{
			name: "contract document",
			in:   &GetContractDocumentResponse{Contract: &Document{URL: "http://localhost/c.pdf", Document: "body"}},
			out:  &GetContractDocumentResponse{},
		},
	}

	codec := Codec{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if err := codec.Unmarshal(data, tt.out); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.in, tt.out, protocmp.Transform()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_RejectsForeignValues(t *testing.T) {
	t.Parallel()

	if _, err := (Codec{}).Marshal("not a message"); !errors.Is(err, ErrNotMessage) {
		t.Errorf("Marshal() error = %v, want ErrNotMessage", err)
	}
	if err := (Codec{}).Unmarshal(nil, new(int)); !errors.Is(err, ErrNotMessage) {
		t.Errorf("Unmarshal() error = %v, want ErrNotMessage", err)
	}
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	t.Parallel()

	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "u-1")
	data = protowire.AppendTag(data, 42, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)
	data = protowire.AppendTag(data, 43, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, 9)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendString(data, "anna@example.com")

	var u User
	if err := u.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if u.ID != "u-1" || u.Email != "anna@example.com" {
		t.Errorf("Unmarshal() = %+v", u)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	t.Parallel()

	data := protowire.AppendTag(nil, 1, protowire.BytesType)
	data = protowire.AppendVarint(data, 10)
	data = append(data, 'a')

	var u User
	if err := u.Unmarshal(data); err == nil {
		t.Error("Unmarshal() error = nil, want error for truncated payload")
	}
}

func TestEnums_ModelMapping(t *testing.T) {
	t.Parallel()

	for _, s := range model.OperationStatuses {
		if got := OperationStatusFromModel(s).ToModel(); got != s {
			t.Errorf("operation status %s mapped back to %s", s, got)
		}
	}
	for _, ot := range model.OperationTypes {
		if got := OperationTypeFromModel(ot).ToModel(); got != ot {
			t.Errorf("operation type %s mapped back to %s", ot, got)
		}
	}
	if OperationStatusFromModel(model.OperationStatusUnspecified) != OperationStatusUnspecified {
		t.Error("UNSPECIFIED must map to the zero enum value")
	}
	if got := AccountType(99).ToModel(); got != "" {
		t.Errorf("AccountType(99).ToModel() = %q, want empty", got)
	}
}

func TestAccountFromModel_RoundTrip(t *testing.T) {
	t.Parallel()

	want := model.Account{
		ID:      "acc-1",
		Type:    model.AccountTypeDebitCard,
		Status:  model.AccountStatusActive,
		Balance: 100,
		Cards: []model.Card{{
			ID:            "card-1",
			Type:          model.CardTypePhysical,
			Status:        model.CardStatusBlocked,
			AccountID:     "acc-1",
			PaymentSystem: model.CardPaymentSystemMastercard,
		}},
	}

	if diff := cmp.Diff(want, AccountFromModel(want).ToModel()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

type usersServer struct {
	UnimplementedUsersGatewayServiceServer
}

func (usersServer) CreateUser(_ context.Context, in *CreateUserRequest) (*CreateUserResponse, error) {
	return &CreateUserResponse{User: &User{ID: "u-1", Email: in.Email, FirstName: in.FirstName}}, nil
}

func TestUsersGatewayService_OverBufconn(t *testing.T) {
	t.Parallel()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(ServerOption())
	RegisterUsersGatewayServiceServer(srv, usersServer{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		DialOption(),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewUsersGatewayServiceClient(conn)
	resp, err := client.CreateUser(ctx, &CreateUserRequest{Email: "anna@example.com", FirstName: "Anna"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if resp.User.ID != "u-1" || resp.User.Email != "anna@example.com" {
		t.Errorf("CreateUser() = %+v", resp.User)
	}

	_, err = client.GetUser(ctx, &GetUserRequest{ID: "u-1"})
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("GetUser() code = %v, want Unimplemented", status.Code(err))
	}
}
