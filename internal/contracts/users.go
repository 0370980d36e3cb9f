package contracts

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// User mirrors contracts.services.users.User.
type User struct {
	ID          string
	Email       string
	LastName    string
	FirstName   string
	MiddleName  string
	PhoneNumber string
}

func (m *User) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.ID)
	e.string(2, m.Email)
	e.string(3, m.LastName)
	e.string(4, m.FirstName)
	e.string(5, m.MiddleName)
	e.string(6, m.PhoneNumber)
	return e.result()
}

func (m *User) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.string()
		case 2:
			m.Email = f.string()
		case 3:
			m.LastName = f.string()
		case 4:
			m.FirstName = f.string()
		case 5:
			m.MiddleName = f.string()
		case 6:
			m.PhoneNumber = f.string()
		}
		return nil
	})
}

// ToModel converts the message to the domain entity.
func (m *User) ToModel() model.User {
	if m == nil {
		return model.User{}
	}
	return model.User{
		ID:          m.ID,
		Email:       m.Email,
		LastName:    m.LastName,
		FirstName:   m.FirstName,
		MiddleName:  m.MiddleName,
		PhoneNumber: m.PhoneNumber,
	}
}

// UserFromModel converts a domain user to its message.
func UserFromModel(u model.User) *User {
	return &User{
		ID:          u.ID,
		Email:       u.Email,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		PhoneNumber: u.PhoneNumber,
	}
}

type GetUserRequest struct {
	ID string
}

func (m *GetUserRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.ID)
	return e.result()
}

func (m *GetUserRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.ID = f.string()
		}
		return nil
	})
}

type CreateUserRequest struct {
	Email       string
	LastName    string
	FirstName   string
	MiddleName  string
	PhoneNumber string
}

func (m *CreateUserRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.Email)
	e.string(2, m.LastName)
	e.string(3, m.FirstName)
	e.string(4, m.MiddleName)
	e.string(5, m.PhoneNumber)
	return e.result()
}

func (m *CreateUserRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.Email = f.string()
		case 2:
			m.LastName = f.string()
		case 3:
			m.FirstName = f.string()
		case 4:
			m.MiddleName = f.string()
		case 5:
			m.PhoneNumber = f.string()
		}
		return nil
	})
}

// UserResponse carries a single user. GetUser and CreateUser both answer with it.
type UserResponse struct {
	User *User
}

type (
	GetUserResponse    = UserResponse
	CreateUserResponse = UserResponse
)

func (m *UserResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.User != nil {
		e.message(1, m.User)
	}
	return e.result()
}

func (m *UserResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.User = &User{}
		return f.message(m.User)
	})
}

const usersService = "contracts.services.gateway.users.UsersGatewayService"

// Full method names of UsersGatewayService.
const (
	UsersGatewayServiceGetUserMethod    = "/" + usersService + "/GetUser"
	UsersGatewayServiceCreateUserMethod = "/" + usersService + "/CreateUser"
)

// UsersGatewayServiceClient is the client API for UsersGatewayService.
type UsersGatewayServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error)
}

type usersGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUsersGatewayServiceClient returns a stub bound to cc.
func NewUsersGatewayServiceClient(cc grpc.ClientConnInterface) UsersGatewayServiceClient {
	return &usersGatewayServiceClient{cc: cc}
}

func (c *usersGatewayServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UsersGatewayServiceGetUserMethod, in, opts...)
}

func (c *usersGatewayServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	return invoke[CreateUserResponse](ctx, c.cc, UsersGatewayServiceCreateUserMethod, in, opts...)
}

// UsersGatewayServiceServer is the server API for UsersGatewayService.
type UsersGatewayServiceServer interface {
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
}

// UnimplementedUsersGatewayServiceServer can be embedded to have forward compatible implementations.
type UnimplementedUsersGatewayServiceServer struct{}

func (UnimplementedUsersGatewayServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUser not implemented")
}

func (UnimplementedUsersGatewayServiceServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateUser not implemented")
}

// UsersGatewayServiceDesc describes UsersGatewayService for grpc.Server.
var UsersGatewayServiceDesc = grpc.ServiceDesc{
	ServiceName: usersService,
	HandlerType: (*UsersGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(usersService, "GetUser", func(srv any, ctx context.Context, in *GetUserRequest) (any, error) {
			return srv.(UsersGatewayServiceServer).GetUser(ctx, in)
		}),
		unary(usersService, "CreateUser", func(srv any, ctx context.Context, in *CreateUserRequest) (any, error) {
			return srv.(UsersGatewayServiceServer).CreateUser(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/services/gateway/users/users_gateway_service.proto",
}

// RegisterUsersGatewayServiceServer registers srv on s.
func RegisterUsersGatewayServiceServer(s grpc.ServiceRegistrar, srv UsersGatewayServiceServer) {
	s.RegisterService(&UsersGatewayServiceDesc, srv)
}

// ToModel converts the request to a user without an id.
func (m *CreateUserRequest) ToModel() model.User {
	return model.User{
		Email:       m.Email,
		LastName:    m.LastName,
		FirstName:   m.FirstName,
		MiddleName:  m.MiddleName,
		PhoneNumber: m.PhoneNumber,
	}
}
