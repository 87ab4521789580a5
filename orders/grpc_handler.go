package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/minimart/minimart/common/api"
	"github.com/minimart/minimart/common/metrics"
)

type grpcHandler struct {
	api.UnimplementedOrderServiceServer
	service     OrdersService
	logger      *slog.Logger
	grpcMetrics *metrics.GRPCMetrics
}

func NewGRPCHandler(grpcServer *grpc.Server, service OrdersService, logger *slog.Logger, grpcMetrics *metrics.GRPCMetrics) {
	handler := &grpcHandler{
		service:     service,
		logger:      logger,
		grpcMetrics: grpcMetrics,
	}
	api.RegisterOrderServiceServer(grpcServer, handler)
}

func (h *grpcHandler) GetOrders(ctx context.Context, req *api.GetOrdersRequest) (*api.GetOrdersResponse, error) {
	start := time.Now()

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		h.grpcMetrics.RecordGRPCRequest("GetOrders", "invalid_argument", time.Since(start))
		return nil, status.Errorf(codes.InvalidArgument, "invalid user id: %v", err)
	}

	orders, err := h.service.ListOrders(ctx, userID, req.GetPage(), req.GetPageSize())
	if err != nil {
		h.logger.Error("failed to list orders",
			slog.String("user_id", req.GetUserId()),
			slog.Any("error", err),
		)
		h.grpcMetrics.RecordGRPCRequest("GetOrders", "internal", time.Since(start))
		return nil, status.Errorf(codes.Internal, "failed to list orders")
	}

	resp := &api.GetOrdersResponse{Orders: make([]*api.Order, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, toAPIOrder(&orders[i]))
	}

	h.grpcMetrics.RecordGRPCRequest("GetOrders", "ok", time.Since(start))
	return resp, nil
}

// AddOrder reports its outcome in band: result 0 when the order was
// accepted, 1 when it was not.
func (h *grpcHandler) AddOrder(ctx context.Context, req *api.AddOrderRequest) (*api.AddOrderResponse, error) {
	start := time.Now()

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		h.grpcMetrics.RecordGRPCRequest("AddOrder", "invalid_argument", time.Since(start))
		return nil, status.Errorf(codes.InvalidArgument, "invalid user id: %v", err)
	}

	_, err = h.service.CreateOrder(ctx, userID, AddOrder{
		ItemsID:     req.GetItemId(),
		Price:       req.GetPrice(),
		Count:       req.GetCount(),
		Currency:    req.GetCurrency(),
		Description: req.GetDescription(),
	})
	if err != nil {
		h.logger.Error("failed to add order",
			slog.String("user_id", req.GetUserId()),
			slog.Any("error", err),
		)
		h.grpcMetrics.RecordGRPCRequest("AddOrder", "error", time.Since(start))
		return &api.AddOrderResponse{Result: 1}, nil
	}

	h.grpcMetrics.RecordGRPCRequest("AddOrder", "ok", time.Since(start))
	return &api.AddOrderResponse{Result: 0}, nil
}

func toAPIOrder(order *Order) *api.Order {
	return &api.Order{
		Id:             order.ID,
		UserId:         order.UserID.String(),
		ItemId:         order.ItemID,
		Price:          order.Price,
		Count:          order.Count,
		Currency:       order.Currency,
		SubTime:        order.SubTime,
		PayTime:        order.PayTime,
		Description:    order.Description,
		InventoryState: order.InventoryState,
	}
}
