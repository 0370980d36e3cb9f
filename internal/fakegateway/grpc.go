package fakegateway

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewayperf/gatewayperf/internal/contracts"
	"github.com/gatewayperf/gatewayperf/internal/model"
)

// NewGRPCServer returns a gRPC server with every gateway service backed by
// bank. Latency settings match the HTTP surface.
func NewGRPCServer(bank *Bank, logger *slog.Logger, opts Options) *grpc.Server {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "fakegateway.grpc")

	s := grpc.NewServer(
		contracts.ServerOption(),
		grpc.ChainUnaryInterceptor(
			loggingInterceptor(logger),
			recoveryInterceptor(logger),
			latencyInterceptor(opts.Latency, opts.LatencyJitter),
		),
	)
	RegisterGRPC(s, bank)
	return s
}

// RegisterGRPC registers the five gateway services on s.
func RegisterGRPC(s grpc.ServiceRegistrar, bank *Bank) {
	contracts.RegisterUsersGatewayServiceServer(s, &usersServer{bank: bank})
	contracts.RegisterAccountsGatewayServiceServer(s, &accountsServer{bank: bank})
	contracts.RegisterCardsGatewayServiceServer(s, &cardsServer{bank: bank})
	contracts.RegisterOperationsGatewayServiceServer(s, &operationsServer{bank: bank})
	contracts.RegisterDocumentsGatewayServiceServer(s, &documentsServer{bank: bank})
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		level := slog.LevelDebug
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unknown:
			level = slog.LevelError
		default:
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "grpc request",
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
		)
		return resp, err
	}
}

func recoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				logger.Error("panic recovered",
					slog.String("method", info.FullMethod),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func latencyInterceptor(base, jitter time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		delay := base
		if jitter > 0 {
			delay += rand.N(jitter)
		}
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return nil, status.FromContextError(ctx.Err()).Err()
			}
		}
		return handler(ctx, req)
	}
}

// grpcError maps bank errors to status codes.
func grpcError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

type usersServer struct {
	contracts.UnimplementedUsersGatewayServiceServer
	bank *Bank
}

func (s *usersServer) GetUser(_ context.Context, req *contracts.GetUserRequest) (*contracts.GetUserResponse, error) {
	user, err := s.bank.GetUser(req.ID)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetUserResponse{User: contracts.UserFromModel(user)}, nil
}

func (s *usersServer) CreateUser(_ context.Context, req *contracts.CreateUserRequest) (*contracts.CreateUserResponse, error) {
	user, err := s.bank.CreateUser(req.ToModel())
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.CreateUserResponse{User: contracts.UserFromModel(user)}, nil
}

type accountsServer struct {
	contracts.UnimplementedAccountsGatewayServiceServer
	bank *Bank
}

func (s *accountsServer) GetAccounts(_ context.Context, req *contracts.GetAccountsRequest) (*contracts.GetAccountsResponse, error) {
	accounts, err := s.bank.GetAccounts(req.UserID)
	if err != nil {
		return nil, grpcError(err)
	}
	resp := &contracts.GetAccountsResponse{Accounts: make([]*contracts.Account, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, contracts.AccountFromModel(a))
	}
	return resp, nil
}

func (s *accountsServer) open(req *contracts.OpenAccountRequest, t model.AccountType) (*contracts.OpenAccountResponse, error) {
	account, err := s.bank.OpenAccount(req.UserID, t)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.OpenAccountResponse{Account: contracts.AccountFromModel(account)}, nil
}

func (s *accountsServer) OpenDepositAccount(_ context.Context, req *contracts.OpenDepositAccountRequest) (*contracts.OpenDepositAccountResponse, error) {
	return s.open(req, model.AccountTypeDeposit)
}

func (s *accountsServer) OpenSavingsAccount(_ context.Context, req *contracts.OpenSavingsAccountRequest) (*contracts.OpenSavingsAccountResponse, error) {
	return s.open(req, model.AccountTypeSavings)
}

func (s *accountsServer) OpenDebitCardAccount(_ context.Context, req *contracts.OpenDebitCardAccountRequest) (*contracts.OpenDebitCardAccountResponse, error) {
	return s.open(req, model.AccountTypeDebitCard)
}

func (s *accountsServer) OpenCreditCardAccount(_ context.Context, req *contracts.OpenCreditCardAccountRequest) (*contracts.OpenCreditCardAccountResponse, error) {
	return s.open(req, model.AccountTypeCreditCard)
}

type cardsServer struct {
	contracts.UnimplementedCardsGatewayServiceServer
	bank *Bank
}

func (s *cardsServer) issue(req *contracts.IssueCardRequest, t model.CardType) (*contracts.IssueCardResponse, error) {
	card, err := s.bank.IssueCard(req.UserID, req.AccountID, t)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.IssueCardResponse{Card: contracts.CardFromModel(card)}, nil
}

func (s *cardsServer) IssueVirtualCard(_ context.Context, req *contracts.IssueVirtualCardRequest) (*contracts.IssueVirtualCardResponse, error) {
	return s.issue(req, model.CardTypeVirtual)
}

func (s *cardsServer) IssuePhysicalCard(_ context.Context, req *contracts.IssuePhysicalCardRequest) (*contracts.IssuePhysicalCardResponse, error) {
	return s.issue(req, model.CardTypePhysical)
}

type operationsServer struct {
	contracts.UnimplementedOperationsGatewayServiceServer
	bank *Bank
}

func (s *operationsServer) GetOperation(_ context.Context, req *contracts.GetOperationRequest) (*contracts.GetOperationResponse, error) {
	op, err := s.bank.GetOperation(req.OperationID)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetOperationResponse{Operation: contracts.OperationFromModel(op)}, nil
}

func (s *operationsServer) GetOperationReceipt(_ context.Context, req *contracts.GetOperationReceiptRequest) (*contracts.GetOperationReceiptResponse, error) {
	receipt, err := s.bank.GetOperationReceipt(req.OperationID)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetOperationReceiptResponse{Receipt: contracts.ReceiptFromModel(receipt)}, nil
}

func (s *operationsServer) GetOperations(_ context.Context, req *contracts.GetOperationsRequest) (*contracts.GetOperationsResponse, error) {
	ops, err := s.bank.GetOperations(req.AccountID)
	if err != nil {
		return nil, grpcError(err)
	}
	resp := &contracts.GetOperationsResponse{Operations: make([]*contracts.Operation, 0, len(ops))}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, contracts.OperationFromModel(op))
	}
	return resp, nil
}

func (s *operationsServer) GetOperationsSummary(_ context.Context, req *contracts.GetOperationsSummaryRequest) (*contracts.GetOperationsSummaryResponse, error) {
	summary, err := s.bank.GetOperationsSummary(req.AccountID)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetOperationsSummaryResponse{Summary: contracts.SummaryFromModel(summary)}, nil
}

func (s *operationsServer) record(op model.Operation) (*contracts.OperationResponse, error) {
	created, err := s.bank.MakeOperation(op)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.OperationResponse{Operation: contracts.OperationFromModel(created)}, nil
}

func (s *operationsServer) MakeFeeOperation(_ context.Context, req *contracts.MakeFeeOperationRequest) (*contracts.MakeFeeOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeFee))
}

func (s *operationsServer) MakeTopUpOperation(_ context.Context, req *contracts.MakeTopUpOperationRequest) (*contracts.MakeTopUpOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeTopUp))
}

func (s *operationsServer) MakeCashbackOperation(_ context.Context, req *contracts.MakeCashbackOperationRequest) (*contracts.MakeCashbackOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeCashback))
}

func (s *operationsServer) MakeTransferOperation(_ context.Context, req *contracts.MakeTransferOperationRequest) (*contracts.MakeTransferOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeTransfer))
}

func (s *operationsServer) MakePurchaseOperation(_ context.Context, req *contracts.MakePurchaseOperationRequest) (*contracts.MakePurchaseOperationResponse, error) {
	return s.record(req.ToModel())
}

func (s *operationsServer) MakeBillPaymentOperation(_ context.Context, req *contracts.MakeBillPaymentOperationRequest) (*contracts.MakeBillPaymentOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeBillPayment))
}

func (s *operationsServer) MakeCashWithdrawalOperation(_ context.Context, req *contracts.MakeCashWithdrawalOperationRequest) (*contracts.MakeCashWithdrawalOperationResponse, error) {
	return s.record(req.ToModel(model.OperationTypeCashWithdrawal))
}

type documentsServer struct {
	contracts.UnimplementedDocumentsGatewayServiceServer
	bank *Bank
}

func (s *documentsServer) GetTariffDocument(_ context.Context, req *contracts.GetTariffDocumentRequest) (*contracts.GetTariffDocumentResponse, error) {
	doc, err := s.bank.GetDocument(req.AccountID, model.DocumentKindTariff)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetTariffDocumentResponse{Tariff: contracts.DocumentFromModel(doc)}, nil
}

func (s *documentsServer) GetContractDocument(_ context.Context, req *contracts.GetContractDocumentRequest) (*contracts.GetContractDocumentResponse, error) {
	doc, err := s.bank.GetDocument(req.AccountID, model.DocumentKindContract)
	if err != nil {
		return nil, grpcError(err)
	}
	return &contracts.GetContractDocumentResponse{Contract: contracts.DocumentFromModel(doc)}, nil
}
