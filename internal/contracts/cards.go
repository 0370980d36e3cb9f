package contracts

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// CardType mirrors contracts.services.cards.CardType.
type CardType int32

const (
	CardTypeUnspecified CardType = iota
	CardTypeVirtual
	CardTypePhysical
)

var cardTypes = enumTable[CardType, model.CardType]{"", model.CardTypeVirtual, model.CardTypePhysical}

func (t CardType) ToModel() model.CardType { return cardTypes.toModel(t) }

func CardTypeFromModel(t model.CardType) CardType { return cardTypes.fromModel(t) }

// CardStatus mirrors contracts.services.cards.CardStatus.
type CardStatus int32

const (
	CardStatusUnspecified CardStatus = iota
	CardStatusActive
	CardStatusFrozen
	CardStatusClosed
	CardStatusBlocked
)

var cardStatuses = enumTable[CardStatus, model.CardStatus]{
	"",
	model.CardStatusActive,
	model.CardStatusFrozen,
	model.CardStatusClosed,
	model.CardStatusBlocked,
}

func (s CardStatus) ToModel() model.CardStatus { return cardStatuses.toModel(s) }

func CardStatusFromModel(s model.CardStatus) CardStatus { return cardStatuses.fromModel(s) }

// CardPaymentSystem mirrors contracts.services.cards.CardPaymentSystem.
type CardPaymentSystem int32

const (
	CardPaymentSystemUnspecified CardPaymentSystem = iota
	CardPaymentSystemVisa
	CardPaymentSystemMastercard
)

var cardPaymentSystems = enumTable[CardPaymentSystem, model.CardPaymentSystem]{
	"",
	model.CardPaymentSystemVisa,
	model.CardPaymentSystemMastercard,
}

func (p CardPaymentSystem) ToModel() model.CardPaymentSystem { return cardPaymentSystems.toModel(p) }

func CardPaymentSystemFromModel(p model.CardPaymentSystem) CardPaymentSystem {
	return cardPaymentSystems.fromModel(p)
}

// Card mirrors contracts.services.cards.Card.
type Card struct {
	ID            string
	Pin           string
	CVV           string
	Type          CardType
	Status        CardStatus
	AccountID     string
	CardNumber    string
	CardHolder    string
	ExpiryDate    string
	PaymentSystem CardPaymentSystem
}

func (m *Card) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.ID)
	e.string(2, m.Pin)
	e.string(3, m.CVV)
	e.enum(4, int32(m.Type))
	e.enum(5, int32(m.Status))
	e.string(6, m.AccountID)
	e.string(7, m.CardNumber)
	e.string(8, m.CardHolder)
	e.string(9, m.ExpiryDate)
	e.enum(10, int32(m.PaymentSystem))
	return e.result()
}

func (m *Card) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.string()
		case 2:
			m.Pin = f.string()
		case 3:
			m.CVV = f.string()
		case 4:
			m.Type = CardType(f.enum())
		case 5:
			m.Status = CardStatus(f.enum())
		case 6:
			m.AccountID = f.string()
		case 7:
			m.CardNumber = f.string()
		case 8:
			m.CardHolder = f.string()
		case 9:
			m.ExpiryDate = f.string()
		case 10:
			m.PaymentSystem = CardPaymentSystem(f.enum())
		}
		return nil
	})
}

// ToModel converts the message to the domain entity.
func (m *Card) ToModel() model.Card {
	if m == nil {
		return model.Card{}
	}
	return model.Card{
		ID:            m.ID,
		Pin:           m.Pin,
		CVV:           m.CVV,
		Type:          m.Type.ToModel(),
		Status:        m.Status.ToModel(),
		AccountID:     m.AccountID,
		CardNumber:    m.CardNumber,
		CardHolder:    m.CardHolder,
		ExpiryDate:    m.ExpiryDate,
		PaymentSystem: m.PaymentSystem.ToModel(),
	}
}

// CardFromModel converts a domain card to its message.
func CardFromModel(c model.Card) *Card {
	return &Card{
		ID:            c.ID,
		Pin:           c.Pin,
		CVV:           c.CVV,
		Type:          CardTypeFromModel(c.Type),
		Status:        CardStatusFromModel(c.Status),
		AccountID:     c.AccountID,
		CardNumber:    c.CardNumber,
		CardHolder:    c.CardHolder,
		ExpiryDate:    c.ExpiryDate,
		PaymentSystem: CardPaymentSystemFromModel(c.PaymentSystem),
	}
}

// IssueCardRequest is the request of both Issue*Card methods.
type IssueCardRequest struct {
	UserID    string
	AccountID string
}

func (m *IssueCardRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.UserID)
	e.string(2, m.AccountID)
	return e.result()
}

func (m *IssueCardRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.UserID = f.string()
		case 2:
			m.AccountID = f.string()
		}
		return nil
	})
}

// IssueCardResponse is the response of both Issue*Card methods.
type IssueCardResponse struct {
	Card *Card
}

func (m *IssueCardResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Card != nil {
		e.message(1, m.Card)
	}
	return e.result()
}

func (m *IssueCardResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Card = &Card{}
		return f.message(m.Card)
	})
}

type (
	IssueVirtualCardRequest   = IssueCardRequest
	IssuePhysicalCardRequest  = IssueCardRequest
	IssueVirtualCardResponse  = IssueCardResponse
	IssuePhysicalCardResponse = IssueCardResponse
)

const cardsService = "contracts.services.gateway.cards.CardsGatewayService"

// Full method names of CardsGatewayService.
const (
	CardsGatewayServiceIssueVirtualCardMethod  = "/" + cardsService + "/IssueVirtualCard"
	CardsGatewayServiceIssuePhysicalCardMethod = "/" + cardsService + "/IssuePhysicalCard"
)

// CardsGatewayServiceClient is the client API for CardsGatewayService.
type CardsGatewayServiceClient interface {
	IssueVirtualCard(ctx context.Context, in *IssueVirtualCardRequest, opts ...grpc.CallOption) (*IssueVirtualCardResponse, error)
	IssuePhysicalCard(ctx context.Context, in *IssuePhysicalCardRequest, opts ...grpc.CallOption) (*IssuePhysicalCardResponse, error)
}

type cardsGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCardsGatewayServiceClient returns a stub bound to cc.
func NewCardsGatewayServiceClient(cc grpc.ClientConnInterface) CardsGatewayServiceClient {
	return &cardsGatewayServiceClient{cc: cc}
}

func (c *cardsGatewayServiceClient) IssueVirtualCard(ctx context.Context, in *IssueVirtualCardRequest, opts ...grpc.CallOption) (*IssueVirtualCardResponse, error) {
	return invoke[IssueCardResponse](ctx, c.cc, CardsGatewayServiceIssueVirtualCardMethod, in, opts...)
}

func (c *cardsGatewayServiceClient) IssuePhysicalCard(ctx context.Context, in *IssuePhysicalCardRequest, opts ...grpc.CallOption) (*IssuePhysicalCardResponse, error) {
	return invoke[IssueCardResponse](ctx, c.cc, CardsGatewayServiceIssuePhysicalCardMethod, in, opts...)
}

// CardsGatewayServiceServer is the server API for CardsGatewayService.
type CardsGatewayServiceServer interface {
	IssueVirtualCard(context.Context, *IssueVirtualCardRequest) (*IssueVirtualCardResponse, error)
	IssuePhysicalCard(context.Context, *IssuePhysicalCardRequest) (*IssuePhysicalCardResponse, error)
}

// UnimplementedCardsGatewayServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCardsGatewayServiceServer struct{}

func (UnimplementedCardsGatewayServiceServer) IssueVirtualCard(context.Context, *IssueVirtualCardRequest) (*IssueVirtualCardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssueVirtualCard not implemented")
}

func (UnimplementedCardsGatewayServiceServer) IssuePhysicalCard(context.Context, *IssuePhysicalCardRequest) (*IssuePhysicalCardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssuePhysicalCard not implemented")
}

// CardsGatewayServiceDesc describes CardsGatewayService for grpc.Server.
var CardsGatewayServiceDesc = grpc.ServiceDesc{
	ServiceName: cardsService,
	HandlerType: (*CardsGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(cardsService, "IssueVirtualCard", func(srv any, ctx context.Context, in *IssueCardRequest) (any, error) {
			return srv.(CardsGatewayServiceServer).IssueVirtualCard(ctx, in)
		}),
		unary(cardsService, "IssuePhysicalCard", func(srv any, ctx context.Context, in *IssueCardRequest) (any, error) {
			return srv.(CardsGatewayServiceServer).IssuePhysicalCard(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/services/gateway/cards/cards_gateway_service.proto",
}

// RegisterCardsGatewayServiceServer registers srv on s.
func RegisterCardsGatewayServiceServer(s grpc.ServiceRegistrar, srv CardsGatewayServiceServer) {
	s.RegisterService(&CardsGatewayServiceDesc, srv)
}
