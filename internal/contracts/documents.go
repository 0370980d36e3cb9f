package contracts

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// Document mirrors contracts.services.documents.Document.
type Document struct {
	URL      string
	Document string
}

func (m *Document) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.URL)
	e.string(2, m.Document)
	return e.result()
}

func (m *Document) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.URL = f.string()
		case 2:
			m.Document = f.string()
		}
		return nil
	})
}

// ToModel converts the message to the domain entity.
func (m *Document) ToModel() model.Document {
	if m == nil {
		return model.Document{}
	}
	return model.Document{URL: m.URL, Document: m.Document}
}

// GetDocumentRequest addresses the documents of one account.
type GetDocumentRequest struct {
	AccountID string
}

func (m *GetDocumentRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.AccountID)
	return e.result()
}

func (m *GetDocumentRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.AccountID = f.string()
		}
		return nil
	})
}

type (
	GetTariffDocumentRequest   = GetDocumentRequest
	GetContractDocumentRequest = GetDocumentRequest
)

type GetTariffDocumentResponse struct {
	Tariff *Document
}

func (m *GetTariffDocumentResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Tariff != nil {
		e.message(1, m.Tariff)
	}
	return e.result()
}

func (m *GetTariffDocumentResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Tariff = &Document{}
		return f.message(m.Tariff)
	})
}

type GetContractDocumentResponse struct {
	Contract *Document
}

func (m *GetContractDocumentResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Contract != nil {
		e.message(1, m.Contract)
	}
	return e.result()
}

func (m *GetContractDocumentResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Contract = &Document{}
		return f.message(m.Contract)
	})
}

const documentsService = "contracts.services.gateway.documents.DocumentsGatewayService"

// Full method names of DocumentsGatewayService.
const (
	DocumentsGatewayServiceGetTariffDocumentMethod   = "/" + documentsService + "/GetTariffDocument"
	DocumentsGatewayServiceGetContractDocumentMethod = "/" + documentsService + "/GetContractDocument"
)

// DocumentsGatewayServiceClient is the client API for DocumentsGatewayService.
type DocumentsGatewayServiceClient interface {
	GetTariffDocument(ctx context.Context, in *GetTariffDocumentRequest, opts ...grpc.CallOption) (*GetTariffDocumentResponse, error)
	GetContractDocument(ctx context.Context, in *GetContractDocumentRequest, opts ...grpc.CallOption) (*GetContractDocumentResponse, error)
}

type documentsGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDocumentsGatewayServiceClient returns a stub bound to cc.
func NewDocumentsGatewayServiceClient(cc grpc.ClientConnInterface) DocumentsGatewayServiceClient {
	return &documentsGatewayServiceClient{cc: cc}
}

func (c *documentsGatewayServiceClient) GetTariffDocument(ctx context.Context, in *GetTariffDocumentRequest, opts ...grpc.CallOption) (*GetTariffDocumentResponse, error) {
	return invoke[GetTariffDocumentResponse](ctx, c.cc, DocumentsGatewayServiceGetTariffDocumentMethod, in, opts...)
}

func (c *documentsGatewayServiceClient) GetContractDocument(ctx context.Context, in *GetContractDocumentRequest, opts ...grpc.CallOption) (*GetContractDocumentResponse, error) {
	return invoke[GetContractDocumentResponse](ctx, c.cc, DocumentsGatewayServiceGetContractDocumentMethod, in, opts...)
}

// DocumentsGatewayServiceServer is the server API for DocumentsGatewayService.
type DocumentsGatewayServiceServer interface {
	GetTariffDocument(context.Context, *GetTariffDocumentRequest) (*GetTariffDocumentResponse, error)
	GetContractDocument(context.Context, *GetContractDocumentRequest) (*GetContractDocumentResponse, error)
}

// UnimplementedDocumentsGatewayServiceServer can be embedded to have forward compatible implementations.
type UnimplementedDocumentsGatewayServiceServer struct{}

func (UnimplementedDocumentsGatewayServiceServer) GetTariffDocument(context.Context, *GetTariffDocumentRequest) (*GetTariffDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTariffDocument not implemented")
}

func (UnimplementedDocumentsGatewayServiceServer) GetContractDocument(context.Context, *GetContractDocumentRequest) (*GetContractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContractDocument not implemented")
}

// DocumentsGatewayServiceDesc describes DocumentsGatewayService for grpc.Server.
var DocumentsGatewayServiceDesc = grpc.ServiceDesc{
	ServiceName: documentsService,
	HandlerType: (*DocumentsGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(documentsService, "GetTariffDocument", func(srv any, ctx context.Context, in *GetDocumentRequest) (any, error) {
			return srv.(DocumentsGatewayServiceServer).GetTariffDocument(ctx, in)
		}),
		unary(documentsService, "GetContractDocument", func(srv any, ctx context.Context, in *GetDocumentRequest) (any, error) {
			return srv.(DocumentsGatewayServiceServer).GetContractDocument(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/services/gateway/documents/documents_gateway_service.proto",
}

// RegisterDocumentsGatewayServiceServer registers srv on s.
func RegisterDocumentsGatewayServiceServer(s grpc.ServiceRegistrar, srv DocumentsGatewayServiceServer) {
	s.RegisterService(&DocumentsGatewayServiceDesc, srv)
}

// DocumentFromModel converts a domain document to its message.
func DocumentFromModel(d model.Document) *Document {
	return &Document{URL: d.URL, Document: d.Document}
}
