package contracts

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// OperationType mirrors contracts.services.operations.OperationType.
type OperationType int32

const (
	OperationTypeUnspecified OperationType = iota
	OperationTypeFee
	OperationTypeTopUp
	OperationTypePurchase
	OperationTypeCashback
	OperationTypeTransfer
	OperationTypeBillPayment
	OperationTypeCashWithdrawal
)

var operationTypes = enumTable[OperationType, model.OperationType]{
	"",
	model.OperationTypeFee,
	model.OperationTypeTopUp,
	model.OperationTypePurchase,
	model.OperationTypeCashback,
	model.OperationTypeTransfer,
	model.OperationTypeBillPayment,
	model.OperationTypeCashWithdrawal,
}

func (t OperationType) ToModel() model.OperationType { return operationTypes.toModel(t) }

func OperationTypeFromModel(t model.OperationType) OperationType { return operationTypes.fromModel(t) }

// OperationStatus mirrors contracts.services.operations.OperationStatus.
// The zero value is OPERATION_STATUS_UNSPECIFIED, which the gateway also accepts as a status.
type OperationStatus int32

const (
	OperationStatusUnspecified OperationStatus = iota
	OperationStatusFailed
	OperationStatusCompleted
	OperationStatusInProgress
)

var operationStatuses = enumTable[OperationStatus, model.OperationStatus]{
	model.OperationStatusUnspecified,
	model.OperationStatusFailed,
	model.OperationStatusCompleted,
	model.OperationStatusInProgress,
}

func (s OperationStatus) ToModel() model.OperationStatus { return operationStatuses.toModel(s) }

func OperationStatusFromModel(s model.OperationStatus) OperationStatus {
	return operationStatuses.fromModel(s)
}

// Operation mirrors contracts.services.operations.Operation.
type Operation struct {
	ID        string
	Type      OperationType
	Status    OperationStatus
	Amount    float64
	CardID    string
	Category  string
	CreatedAt *timestamppb.Timestamp
	AccountID string
}

func (m *Operation) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.ID)
	e.enum(2, int32(m.Type))
	e.enum(3, int32(m.Status))
	e.double(4, m.Amount)
	e.string(5, m.CardID)
	e.string(6, m.Category)
	e.timestamp(7, m.CreatedAt)
	e.string(8, m.AccountID)
	return e.result()
}

func (m *Operation) Unmarshal(data []byte) error {
	return decode(data, func(f field) (err error) {
		switch f.num {
		case 1:
			m.ID = f.string()
		case 2:
			m.Type = OperationType(f.enum())
		case 3:
			m.Status = OperationStatus(f.enum())
		case 4:
			m.Amount = f.double()
		case 5:
			m.CardID = f.string()
		case 6:
			m.Category = f.string()
		case 7:
			m.CreatedAt, err = f.timestamp()
		case 8:
			m.AccountID = f.string()
		}
		return err
	})
}

// ToModel converts the message to the domain entity.
func (m *Operation) ToModel() model.Operation {
	if m == nil {
		return model.Operation{}
	}
	op := model.Operation{
		ID:        m.ID,
		Type:      m.Type.ToModel(),
		Status:    m.Status.ToModel(),
		Amount:    m.Amount,
		CardID:    m.CardID,
		Category:  m.Category,
		AccountID: m.AccountID,
	}
	if m.CreatedAt != nil {
		op.CreatedAt = m.CreatedAt.AsTime()
	}
	return op
}

// OperationFromModel converts a domain operation to its message.
func OperationFromModel(op model.Operation) *Operation {
	m := &Operation{
		ID:        op.ID,
		Type:      OperationTypeFromModel(op.Type),
		Status:    OperationStatusFromModel(op.Status),
		Amount:    op.Amount,
		CardID:    op.CardID,
		Category:  op.Category,
		AccountID: op.AccountID,
	}
	if !op.CreatedAt.IsZero() {
		m.CreatedAt = timestamppb.New(op.CreatedAt)
	}
	return m
}

// OperationReceipt mirrors contracts.services.operations.OperationReceipt.
type OperationReceipt struct {
	URL      string
	Document string
}

func (m *OperationReceipt) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.URL)
	e.string(2, m.Document)
	return e.result()
}

func (m *OperationReceipt) Unmarshal(data []byte) error {
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
func (m *OperationReceipt) ToModel() model.Receipt {
	if m == nil {
		return model.Receipt{}
	}
	return model.Receipt{URL: m.URL, Document: m.Document}
}

// OperationsSummary mirrors contracts.services.operations.OperationsSummary.
type OperationsSummary struct {
	SpentAmount    float64
	ReceivedAmount float64
	CashbackAmount float64
}

func (m *OperationsSummary) Marshal() ([]byte, error) {
	var e encoder
	e.double(1, m.SpentAmount)
	e.double(2, m.ReceivedAmount)
	e.double(3, m.CashbackAmount)
	return e.result()
}

func (m *OperationsSummary) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		switch f.num {
		case 1:
			m.SpentAmount = f.double()
		case 2:
			m.ReceivedAmount = f.double()
		case 3:
			m.CashbackAmount = f.double()
		}
		return nil
	})
}

// ToModel converts the message to the domain entity.
func (m *OperationsSummary) ToModel() model.OperationsSummary {
	if m == nil {
		return model.OperationsSummary{}
	}
	return model.OperationsSummary{
		SpentAmount:    m.SpentAmount,
		ReceivedAmount: m.ReceivedAmount,
		CashbackAmount: m.CashbackAmount,
	}
}

// OperationIDRequest addresses one operation. GetOperation and GetOperationReceipt use it.
type OperationIDRequest struct {
	OperationID string
}

func (m *OperationIDRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.OperationID)
	return e.result()
}

func (m *OperationIDRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.OperationID = f.string()
		}
		return nil
	})
}

// AccountOperationsRequest addresses the operations of one account.
type AccountOperationsRequest struct {
	AccountID string
}

func (m *AccountOperationsRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, m.AccountID)
	return e.result()
}

func (m *AccountOperationsRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 1 {
			m.AccountID = f.string()
		}
		return nil
	})
}

type (
	GetOperationRequest         = OperationIDRequest
	GetOperationReceiptRequest  = OperationIDRequest
	GetOperationsRequest        = AccountOperationsRequest
	GetOperationsSummaryRequest = AccountOperationsRequest
)

// MakeOperationRequest is the request of every Make*Operation method except purchases.
type MakeOperationRequest struct {
	Status    OperationStatus
	Amount    float64
	CardID    string
	AccountID string
}

func (m *MakeOperationRequest) Marshal() ([]byte, error) {
	var e encoder
	m.encode(&e)
	return e.result()
}

func (m *MakeOperationRequest) encode(e *encoder) {
	e.enum(1, int32(m.Status))
	e.double(2, m.Amount)
	e.string(3, m.CardID)
	e.string(4, m.AccountID)
}

func (m *MakeOperationRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		m.decode(f)
		return nil
	})
}

func (m *MakeOperationRequest) decode(f field) {
	switch f.num {
	case 1:
		m.Status = OperationStatus(f.enum())
	case 2:
		m.Amount = f.double()
	case 3:
		m.CardID = f.string()
	case 4:
		m.AccountID = f.string()
	}
}

// MakePurchaseOperationRequest adds the purchase category as field 5.
type MakePurchaseOperationRequest struct {
	MakeOperationRequest
	Category string
}

func (m *MakePurchaseOperationRequest) Marshal() ([]byte, error) {
	var e encoder
	m.encode(&e)
	e.string(5, m.Category)
	return e.result()
}

func (m *MakePurchaseOperationRequest) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num == 5 {
			m.Category = f.string()
			return nil
		}
		m.decode(f)
		return nil
	})
}

type (
	MakeFeeOperationRequest            = MakeOperationRequest
	MakeTopUpOperationRequest          = MakeOperationRequest
	MakeCashbackOperationRequest       = MakeOperationRequest
	MakeTransferOperationRequest       = MakeOperationRequest
	MakeBillPaymentOperationRequest    = MakeOperationRequest
	MakeCashWithdrawalOperationRequest = MakeOperationRequest
)

// OperationResponse carries one operation.
type OperationResponse struct {
	Operation *Operation
}

func (m *OperationResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Operation != nil {
		e.message(1, m.Operation)
	}
	return e.result()
}

func (m *OperationResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Operation = &Operation{}
		return f.message(m.Operation)
	})
}

type (
	GetOperationResponse                = OperationResponse
	MakeFeeOperationResponse            = OperationResponse
	MakeTopUpOperationResponse          = OperationResponse
	MakeCashbackOperationResponse       = OperationResponse
	MakeTransferOperationResponse       = OperationResponse
	MakePurchaseOperationResponse       = OperationResponse
	MakeBillPaymentOperationResponse    = OperationResponse
	MakeCashWithdrawalOperationResponse = OperationResponse
)

type GetOperationsResponse struct {
	Operations []*Operation
}

func (m *GetOperationsResponse) Marshal() ([]byte, error) {
	var e encoder
	for _, op := range m.Operations {
		e.message(1, op)
	}
	return e.result()
}

func (m *GetOperationsResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		op := &Operation{}
		if err := f.message(op); err != nil {
			return err
		}
		m.Operations = append(m.Operations, op)
		return nil
	})
}

type GetOperationReceiptResponse struct {
	Receipt *OperationReceipt
}

func (m *GetOperationReceiptResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Receipt != nil {
		e.message(1, m.Receipt)
	}
	return e.result()
}

func (m *GetOperationReceiptResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Receipt = &OperationReceipt{}
		return f.message(m.Receipt)
	})
}

type GetOperationsSummaryResponse struct {
	Summary *OperationsSummary
}

func (m *GetOperationsSummaryResponse) Marshal() ([]byte, error) {
	var e encoder
	if m.Summary != nil {
		e.message(1, m.Summary)
	}
	return e.result()
}

func (m *GetOperationsSummaryResponse) Unmarshal(data []byte) error {
	return decode(data, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Summary = &OperationsSummary{}
		return f.message(m.Summary)
	})
}

const operationsService = "contracts.services.gateway.operations.OperationsGatewayService"

// Full method names of OperationsGatewayService.
const (
	OperationsGatewayServiceGetOperationMethod                = "/" + operationsService + "/GetOperation"
	OperationsGatewayServiceGetOperationReceiptMethod         = "/" + operationsService + "/GetOperationReceipt"
	OperationsGatewayServiceGetOperationsMethod               = "/" + operationsService + "/GetOperations"
	OperationsGatewayServiceGetOperationsSummaryMethod        = "/" + operationsService + "/GetOperationsSummary"
	OperationsGatewayServiceMakeFeeOperationMethod            = "/" + operationsService + "/MakeFeeOperation"
	OperationsGatewayServiceMakeTopUpOperationMethod          = "/" + operationsService + "/MakeTopUpOperation"
	OperationsGatewayServiceMakeCashbackOperationMethod       = "/" + operationsService + "/MakeCashbackOperation"
	OperationsGatewayServiceMakeTransferOperationMethod       = "/" + operationsService + "/MakeTransferOperation"
	OperationsGatewayServiceMakePurchaseOperationMethod       = "/" + operationsService + "/MakePurchaseOperation"
	OperationsGatewayServiceMakeBillPaymentOperationMethod    = "/" + operationsService + "/MakeBillPaymentOperation"
	OperationsGatewayServiceMakeCashWithdrawalOperationMethod = "/" + operationsService + "/MakeCashWithdrawalOperation"
)

// OperationsGatewayServiceClient is the client API for OperationsGatewayService.
type OperationsGatewayServiceClient interface {
	GetOperation(ctx context.Context, in *GetOperationRequest, opts ...grpc.CallOption) (*GetOperationResponse, error)
	GetOperationReceipt(ctx context.Context, in *GetOperationReceiptRequest, opts ...grpc.CallOption) (*GetOperationReceiptResponse, error)
	GetOperations(ctx context.Context, in *GetOperationsRequest, opts ...grpc.CallOption) (*GetOperationsResponse, error)
	GetOperationsSummary(ctx context.Context, in *GetOperationsSummaryRequest, opts ...grpc.CallOption) (*GetOperationsSummaryResponse, error)
	MakeFeeOperation(ctx context.Context, in *MakeFeeOperationRequest, opts ...grpc.CallOption) (*MakeFeeOperationResponse, error)
	MakeTopUpOperation(ctx context.Context, in *MakeTopUpOperationRequest, opts ...grpc.CallOption) (*MakeTopUpOperationResponse, error)
	MakeCashbackOperation(ctx context.Context, in *MakeCashbackOperationRequest, opts ...grpc.CallOption) (*MakeCashbackOperationResponse, error)
	MakeTransferOperation(ctx context.Context, in *MakeTransferOperationRequest, opts ...grpc.CallOption) (*MakeTransferOperationResponse, error)
	MakePurchaseOperation(ctx context.Context, in *MakePurchaseOperationRequest, opts ...grpc.CallOption) (*MakePurchaseOperationResponse, error)
	MakeBillPaymentOperation(ctx context.Context, in *MakeBillPaymentOperationRequest, opts ...grpc.CallOption) (*MakeBillPaymentOperationResponse, error)
	MakeCashWithdrawalOperation(ctx context.Context, in *MakeCashWithdrawalOperationRequest, opts ...grpc.CallOption) (*MakeCashWithdrawalOperationResponse, error)
}

type operationsGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOperationsGatewayServiceClient returns a stub bound to cc.
func NewOperationsGatewayServiceClient(cc grpc.ClientConnInterface) OperationsGatewayServiceClient {
	return &operationsGatewayServiceClient{cc: cc}
}

func (c *operationsGatewayServiceClient) GetOperation(ctx context.Context, in *GetOperationRequest, opts ...grpc.CallOption) (*GetOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceGetOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) GetOperationReceipt(ctx context.Context, in *GetOperationReceiptRequest, opts ...grpc.CallOption) (*GetOperationReceiptResponse, error) {
	return invoke[GetOperationReceiptResponse](ctx, c.cc, OperationsGatewayServiceGetOperationReceiptMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) GetOperations(ctx context.Context, in *GetOperationsRequest, opts ...grpc.CallOption) (*GetOperationsResponse, error) {
	return invoke[GetOperationsResponse](ctx, c.cc, OperationsGatewayServiceGetOperationsMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) GetOperationsSummary(ctx context.Context, in *GetOperationsSummaryRequest, opts ...grpc.CallOption) (*GetOperationsSummaryResponse, error) {
	return invoke[GetOperationsSummaryResponse](ctx, c.cc, OperationsGatewayServiceGetOperationsSummaryMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeFeeOperation(ctx context.Context, in *MakeFeeOperationRequest, opts ...grpc.CallOption) (*MakeFeeOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeFeeOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeTopUpOperation(ctx context.Context, in *MakeTopUpOperationRequest, opts ...grpc.CallOption) (*MakeTopUpOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeTopUpOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeCashbackOperation(ctx context.Context, in *MakeCashbackOperationRequest, opts ...grpc.CallOption) (*MakeCashbackOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeCashbackOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeTransferOperation(ctx context.Context, in *MakeTransferOperationRequest, opts ...grpc.CallOption) (*MakeTransferOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeTransferOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakePurchaseOperation(ctx context.Context, in *MakePurchaseOperationRequest, opts ...grpc.CallOption) (*MakePurchaseOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakePurchaseOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeBillPaymentOperation(ctx context.Context, in *MakeBillPaymentOperationRequest, opts ...grpc.CallOption) (*MakeBillPaymentOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeBillPaymentOperationMethod, in, opts...)
}

func (c *operationsGatewayServiceClient) MakeCashWithdrawalOperation(ctx context.Context, in *MakeCashWithdrawalOperationRequest, opts ...grpc.CallOption) (*MakeCashWithdrawalOperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, OperationsGatewayServiceMakeCashWithdrawalOperationMethod, in, opts...)
}

// OperationsGatewayServiceServer is the server API for OperationsGatewayService.
type OperationsGatewayServiceServer interface {
	GetOperation(context.Context, *GetOperationRequest) (*GetOperationResponse, error)
	GetOperationReceipt(context.Context, *GetOperationReceiptRequest) (*GetOperationReceiptResponse, error)
	GetOperations(context.Context, *GetOperationsRequest) (*GetOperationsResponse, error)
	GetOperationsSummary(context.Context, *GetOperationsSummaryRequest) (*GetOperationsSummaryResponse, error)
	MakeFeeOperation(context.Context, *MakeFeeOperationRequest) (*MakeFeeOperationResponse, error)
	MakeTopUpOperation(context.Context, *MakeTopUpOperationRequest) (*MakeTopUpOperationResponse, error)
	MakeCashbackOperation(context.Context, *MakeCashbackOperationRequest) (*MakeCashbackOperationResponse, error)
	MakeTransferOperation(context.Context, *MakeTransferOperationRequest) (*MakeTransferOperationResponse, error)
	MakePurchaseOperation(context.Context, *MakePurchaseOperationRequest) (*MakePurchaseOperationResponse, error)
	MakeBillPaymentOperation(context.Context, *MakeBillPaymentOperationRequest) (*MakeBillPaymentOperationResponse, error)
	MakeCashWithdrawalOperation(context.Context, *MakeCashWithdrawalOperationRequest) (*MakeCashWithdrawalOperationResponse, error)
}

// UnimplementedOperationsGatewayServiceServer can be embedded to have forward compatible implementations.
type UnimplementedOperationsGatewayServiceServer struct{}

func (UnimplementedOperationsGatewayServiceServer) GetOperation(context.Context, *GetOperationRequest) (*GetOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) GetOperationReceipt(context.Context, *GetOperationReceiptRequest) (*GetOperationReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOperationReceipt not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) GetOperations(context.Context, *GetOperationsRequest) (*GetOperationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOperations not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) GetOperationsSummary(context.Context, *GetOperationsSummaryRequest) (*GetOperationsSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOperationsSummary not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeFeeOperation(context.Context, *MakeFeeOperationRequest) (*MakeFeeOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeFeeOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeTopUpOperation(context.Context, *MakeTopUpOperationRequest) (*MakeTopUpOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeTopUpOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeCashbackOperation(context.Context, *MakeCashbackOperationRequest) (*MakeCashbackOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeCashbackOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeTransferOperation(context.Context, *MakeTransferOperationRequest) (*MakeTransferOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeTransferOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakePurchaseOperation(context.Context, *MakePurchaseOperationRequest) (*MakePurchaseOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakePurchaseOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeBillPaymentOperation(context.Context, *MakeBillPaymentOperationRequest) (*MakeBillPaymentOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeBillPaymentOperation not implemented")
}

func (UnimplementedOperationsGatewayServiceServer) MakeCashWithdrawalOperation(context.Context, *MakeCashWithdrawalOperationRequest) (*MakeCashWithdrawalOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeCashWithdrawalOperation not implemented")
}

// OperationsGatewayServiceDesc describes OperationsGatewayService for grpc.Server.
var OperationsGatewayServiceDesc = grpc.ServiceDesc{
	ServiceName: operationsService,
	HandlerType: (*OperationsGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(operationsService, "GetOperation", func(srv any, ctx context.Context, in *OperationIDRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).GetOperation(ctx, in)
		}),
		unary(operationsService, "GetOperationReceipt", func(srv any, ctx context.Context, in *OperationIDRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).GetOperationReceipt(ctx, in)
		}),
		unary(operationsService, "GetOperations", func(srv any, ctx context.Context, in *AccountOperationsRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).GetOperations(ctx, in)
		}),
		unary(operationsService, "GetOperationsSummary", func(srv any, ctx context.Context, in *AccountOperationsRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).GetOperationsSummary(ctx, in)
		}),
		unary(operationsService, "MakeFeeOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeFeeOperation(ctx, in)
		}),
		unary(operationsService, "MakeTopUpOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeTopUpOperation(ctx, in)
		}),
		unary(operationsService, "MakeCashbackOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeCashbackOperation(ctx, in)
		}),
		unary(operationsService, "MakeTransferOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeTransferOperation(ctx, in)
		}),
		unary(operationsService, "MakePurchaseOperation", func(srv any, ctx context.Context, in *MakePurchaseOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakePurchaseOperation(ctx, in)
		}),
		unary(operationsService, "MakeBillPaymentOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeBillPaymentOperation(ctx, in)
		}),
		unary(operationsService, "MakeCashWithdrawalOperation", func(srv any, ctx context.Context, in *MakeOperationRequest) (any, error) {
			return srv.(OperationsGatewayServiceServer).MakeCashWithdrawalOperation(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/services/gateway/operations/operations_gateway_service.proto",
}

// RegisterOperationsGatewayServiceServer registers srv on s.
func RegisterOperationsGatewayServiceServer(s grpc.ServiceRegistrar, srv OperationsGatewayServiceServer) {
	s.RegisterService(&OperationsGatewayServiceDesc, srv)
}

// ReceiptFromModel converts a domain receipt to its message.
func ReceiptFromModel(r model.Receipt) *OperationReceipt {
	return &OperationReceipt{URL: r.URL, Document: r.Document}
}

// SummaryFromModel converts a domain summary to its message.
func SummaryFromModel(s model.OperationsSummary) *OperationsSummary {
	return &OperationsSummary{
		SpentAmount:    s.SpentAmount,
		ReceivedAmount: s.ReceivedAmount,
		CashbackAmount: s.CashbackAmount,
	}
}

// ToModel converts the request to an operation of type t.
func (m *MakeOperationRequest) ToModel(t model.OperationType) model.Operation {
	return model.Operation{
		Type:      t,
		Status:    m.Status.ToModel(),
		Amount:    m.Amount,
		CardID:    m.CardID,
		AccountID: m.AccountID,
	}
}

// ToModel converts the request to a purchase operation.
func (m *MakePurchaseOperationRequest) ToModel() model.Operation {
	op := m.MakeOperationRequest.ToModel(model.OperationTypePurchase)
	op.Category = m.Category
	return op
}
