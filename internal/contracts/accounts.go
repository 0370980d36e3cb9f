package contracts

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// AccountType mirrors contracts.services.accounts.AccountType.
type AccountType int32

const (
	AccountTypeUnspecified AccountType = iota
	AccountTypeDeposit
	AccountTypeSavings
	AccountTypeDebitCard
	AccountTypeCreditCard
)

var accountTypes = enumTable[AccountType, model.AccountType]{
	"",
	model.AccountTypeDeposit,
	model.AccountTypeSavings,
	model.AccountTypeDebitCard,
	model.AccountTypeCreditCard,
}

// ToModel converts the enum to the domain value.
func (t AccountType) ToModel() model.AccountType { return accountTypes.toModel(t) }

// AccountTypeFromModel converts a domain value to the enum.
func AccountTypeFromModel(t model.AccountType) AccountType { return accountTypes.fromModel(t) }

// AccountStatus mirrors contracts.services.accounts.AccountStatus.
type AccountStatus int32

const (
	AccountStatusUnspecified AccountStatus = iota
	AccountStatusActive
	AccountStatusPendingClosure
	AccountStatusClosed
)

var accountStatuses = enumTable[AccountStatus, model.AccountStatus]{
	"",
	model.AccountStatusActive,
	model.AccountStatusPendingClosure,
	model.AccountStatusClosed,
}

// ToModel converts the enum to the domain value.
func (s AccountStatus) ToModel() model.AccountStatus { return accountStatuses.toModel(s) }

// AccountStatusFromModel converts a domain value to the enum.
func AccountStatusFromModel(s model.AccountStatus) AccountStatus {
	return accountStatuses.fromModel(s)
}

// Account mirrors contracts.services.accounts.Account.
type Account struct {
	ID      string
	Type    AccountType
	Cards   []*Card
	Status  AccountStatus
	Balance float64
}

func (m *Account) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.ID)
	e.enum(2, int32(m.Type))
	for _, c := range m.Cards {
		e.message(3, c)
	}
	e.enum(4, int32(m.Status))
	e.double(5, m.Balance)
	return e.result()
}

func (m *Account) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.string()
		case 2:
			m.Type = AccountType(f.enum())
		case 3:
			c := &Card{}
			if err := f.message(c); err != nil {
				return err
			}
			m.Cards = append(m.Cards, c)
		case 4:
			m.Status = AccountStatus(f.enum())
		case 5:
			m.Balance = f.double()
		}
		return nil
	})
}

// ToModel converts the message to the domain entity.
func (m *Account) ToModel() model.Account {
	if m == nil {
		return model.Account{}
	}
	cards := make([]model.Card, 0, len(m.Cards))
	for _, c := range m.Cards {
		cards = append(cards, c.ToModel())
	}
	return model.Account{
		ID:      m.ID,
		Type:    m.Type.ToModel(),
		Cards:   cards,
		Status:  m.Status.ToModel(),
		Balance: m.Balance,
	}
}

// AccountFromModel converts a domain account to its message.
func AccountFromModel(a model.Account) *Account {
	cards := make([]*Card, 0, len(a.Cards))
	for _, c := range a.Cards {
		cards = append(cards, CardFromModel(c))
	}
	return &Account{
		ID:      a.ID,
		Type:    AccountTypeFromModel(a.Type),
		Cards:   cards,
		Status:  AccountStatusFromModel(a.Status),
		Balance: a.Balance,
	}
}

type GetAccountsRequest struct {
	UserID string
}

func (m *GetAccountsRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.UserID)
	return e.result()
}

func (m *GetAccountsRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.UserID = f.string()
		}
		return nil
	})
}

type GetAccountsResponse struct {
	Accounts []*Account
}

func (m *GetAccountsResponse) Marshal() ([]byte, error) {
	var e encoder
	for _, a := range m.Accounts {
		e.message(1, a)
	}
	return e.result()
}

func (m *GetAccountsResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		a := &Account{}
		if err := f.message(a); err != nil {
			return err
		}
		m.Accounts = append(m.Accounts, a)
		return nil
	})
}

// OpenAccountRequest is the request of every Open*Account method.
type OpenAccountRequest struct {
	UserID string
}

func (m *OpenAccountRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.UserID)
	return e.result()
}

func (m *OpenAccountRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.UserID = f.string()
		}
		return nil
	})
}

// OpenAccountResponse is the response of every Open*Account method.
type OpenAccountResponse struct {
	Account *Account
}

func (m *OpenAccountResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Account != nil {
		e.message(1, m.Account)
	}
	return e.result()
}

func (m *OpenAccountResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Account = &Account{}
		return f.message(m.Account)
	})
}

type (
	OpenDepositAccountRequest     = OpenAccountRequest
	OpenSavingsAccountRequest     = OpenAccountRequest
	OpenDebitCardAccountRequest   = OpenAccountRequest
	OpenCreditCardAccountRequest  = OpenAccountRequest
	OpenDepositAccountResponse    = OpenAccountResponse
	OpenSavingsAccountResponse    = OpenAccountResponse
	OpenDebitCardAccountResponse  = OpenAccountResponse
	OpenCreditCardAccountResponse = OpenAccountResponse
)

const accountsService = "contracts.services.gateway.accounts.AccountsGatewayService"

// Full method names of AccountsGatewayService.
const (
	AccountsGatewayServiceGetAccountsMethod           = "/" + accountsService + "/GetAccounts"
	AccountsGatewayServiceOpenDepositAccountMethod    = "/" + accountsService + "/OpenDepositAccount"
	AccountsGatewayServiceOpenSavingsAccountMethod    = "/" + accountsService + "/OpenSavingsAccount"
	AccountsGatewayServiceOpenDebitCardAccountMethod  = "/" + accountsService + "/OpenDebitCardAccount"
	AccountsGatewayServiceOpenCreditCardAccountMethod = "/" + accountsService + "/OpenCreditCardAccount"
)

// AccountsGatewayServiceClient is the client API for AccountsGatewayService.
type AccountsGatewayServiceClient interface {
	GetAccounts(ctx context.Context, in *GetAccountsRequest, opts ...grpc.CallOption) (*GetAccountsResponse, error)
	OpenDepositAccount(ctx context.Context, in *OpenDepositAccountRequest, opts ...grpc.CallOption) (*OpenDepositAccountResponse, error)
	OpenSavingsAccount(ctx context.Context, in *OpenSavingsAccountRequest, opts ...grpc.CallOption) (*OpenSavingsAccountResponse, error)
	OpenDebitCardAccount(ctx context.Context, in *OpenDebitCardAccountRequest, opts ...grpc.CallOption) (*OpenDebitCardAccountResponse, error)
	OpenCreditCardAccount(ctx context.Context, in *OpenCreditCardAccountRequest, opts ...grpc.CallOption) (*OpenCreditCardAccountResponse, error)
}

type accountsGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountsGatewayServiceClient returns a stub bound to cc.
func NewAccountsGatewayServiceClient(cc grpc.ClientConnInterface) AccountsGatewayServiceClient {
	return &accountsGatewayServiceClient{cc: cc}
}

func (c *accountsGatewayServiceClient) GetAccounts(ctx context.Context, in *GetAccountsRequest, opts ...grpc.CallOption) (*GetAccountsResponse, error) {
	return invoke[GetAccountsResponse](ctx, c.cc, AccountsGatewayServiceGetAccountsMethod, in, opts...)
}

func (c *accountsGatewayServiceClient) OpenDepositAccount(ctx context.Context, in *OpenDepositAccountRequest, opts ...grpc.CallOption) (*OpenDepositAccountResponse, error) {
	return invoke[OpenAccountResponse](ctx, c.cc, AccountsGatewayServiceOpenDepositAccountMethod, in, opts...)
}

func (c *accountsGatewayServiceClient) OpenSavingsAccount(ctx context.Context, in *OpenSavingsAccountRequest, opts ...grpc.CallOption) (*OpenSavingsAccountResponse, error) {
	return invoke[OpenAccountResponse](ctx, c.cc, AccountsGatewayServiceOpenSavingsAccountMethod, in, opts...)
}

func (c *accountsGatewayServiceClient) OpenDebitCardAccount(ctx context.Context, in *OpenDebitCardAccountRequest, opts ...grpc.CallOption) (*OpenDebitCardAccountResponse, error) {
	return invoke[OpenAccountResponse](ctx, c.cc, AccountsGatewayServiceOpenDebitCardAccountMethod, in, opts...)
}

func (c *accountsGatewayServiceClient) OpenCreditCardAccount(ctx context.Context, in *OpenCreditCardAccountRequest, opts ...grpc.CallOption) (*OpenCreditCardAccountResponse, error) {
	return invoke[OpenAccountResponse](ctx, c.cc, AccountsGatewayServiceOpenCreditCardAccountMethod, in, opts...)
}

// AccountsGatewayServiceServer is the server API for AccountsGatewayService.
type AccountsGatewayServiceServer interface {
	GetAccounts(context.Context, *GetAccountsRequest) (*GetAccountsResponse, error)
	OpenDepositAccount(context.Context, *OpenDepositAccountRequest) (*OpenDepositAccountResponse, error)
	OpenSavingsAccount(context.Context, *OpenSavingsAccountRequest) (*OpenSavingsAccountResponse, error)
	OpenDebitCardAccount(context.Context, *OpenDebitCardAccountRequest) (*OpenDebitCardAccountResponse, error)
	OpenCreditCardAccount(context.Context, *OpenCreditCardAccountRequest) (*OpenCreditCardAccountResponse, error)
}

// UnimplementedAccountsGatewayServiceServer can be embedded to have forward compatible implementations.
type UnimplementedAccountsGatewayServiceServer struct{}

func (UnimplementedAccountsGatewayServiceServer) GetAccounts(context.Context, *GetAccountsRequest) (*GetAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccounts not implemented")
}

func (UnimplementedAccountsGatewayServiceServer) OpenDepositAccount(context.Context, *OpenDepositAccountRequest) (*OpenDepositAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenDepositAccount not implemented")
}

func (UnimplementedAccountsGatewayServiceServer) OpenSavingsAccount(context.Context, *OpenSavingsAccountRequest) (*OpenSavingsAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenSavingsAccount not implemented")
}

func (UnimplementedAccountsGatewayServiceServer) OpenDebitCardAccount(context.Context, *OpenDebitCardAccountRequest) (*OpenDebitCardAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenDebitCardAccount not implemented")
}

func (UnimplementedAccountsGatewayServiceServer) OpenCreditCardAccount(context.Context, *OpenCreditCardAccountRequest) (*OpenCreditCardAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenCreditCardAccount not implemented")
}

// AccountsGatewayServiceDesc describes AccountsGatewayService for grpc.Server.
var AccountsGatewayServiceDesc = grpc.ServiceDesc{
	ServiceName: accountsService,
	HandlerType: (*AccountsGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(accountsService, "GetAccounts", func(srv any, ctx context.Context, in *GetAccountsRequest) (any, error) {
			return srv.(AccountsGatewayServiceServer).GetAccounts(ctx, in)
		}),
		unary(accountsService, "OpenDepositAccount", func(srv any, ctx context.Context, in *OpenAccountRequest) (any, error) {
			return srv.(AccountsGatewayServiceServer).OpenDepositAccount(ctx, in)
		}),
		unary(accountsService, "OpenSavingsAccount", func(srv any, ctx context.Context, in *OpenAccountRequest) (any, error) {
			return srv.(AccountsGatewayServiceServer).OpenSavingsAccount(ctx, in)
		}),
		unary(accountsService, "OpenDebitCardAccount", func(srv any, ctx context.Context, in *OpenAccountRequest) (any, error) {
			return srv.(AccountsGatewayServiceServer).OpenDebitCardAccount(ctx, in)
		}),
		unary(accountsService, "OpenCreditCardAccount", func(srv any, ctx context.Context, in *OpenAccountRequest) (any, error) {
			return srv.(AccountsGatewayServiceServer).OpenCreditCardAccount(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/services/gateway/accounts/accounts_gateway_service.proto",
}

// RegisterAccountsGatewayServiceServer registers srv on s.
func RegisterAccountsGatewayServiceServer(s grpc.ServiceRegistrar, srv AccountsGatewayServiceServer) {
	s.RegisterService(&AccountsGatewayServiceDesc, srv)
}
