package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/minimart/minimart/common/api"
	"github.com/minimart/minimart/common/metrics"
)

// Deduction results travel in-band; the RPC itself only fails on
// transport problems. 200 and 400 are definitive for the caller, 500
// means retry later.
const (
	resultOK       = 200
	resultRefused  = 400
	resultInternal = 500
)

type grpcHandler struct {
	api.UnimplementedInventoryServiceServer
	service         InventoryService
	grpcMetrics     *metrics.GRPCMetrics
	businessMetrics *metrics.BusinessMetrics
}

func NewGRPCHandler(grpcServer *grpc.Server, service InventoryService, grpcMetrics *metrics.GRPCMetrics, businessMetrics *metrics.BusinessMetrics) {
	handler := &grpcHandler{
		service:         service,
		grpcMetrics:     grpcMetrics,
		businessMetrics: businessMetrics,
	}
	api.RegisterInventoryServiceServer(grpcServer, handler)
}

func (h *grpcHandler) DeductionInventory(ctx context.Context, req *api.DeductionInventoryRequest) (*api.DeductionInventoryResponse, error) {
	start := time.Now()

	description := fmt.Sprintf("deduction for order %d", req.GetOrdersId())
	err := h.service.Deduct(ctx, req.GetInventoryId(), req.GetDeductionCount(), req.GetOrdersId(), description)

	result := resultOK
	label := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidCount), errors.Is(err, ErrNotFound):
		result = resultRefused
		label = "refused"
	default:
		zap.L().Error("inventory deduction failed",
			zap.Int32("inventory_id", req.GetInventoryId()),
			zap.Int32("orders_id", req.GetOrdersId()),
			zap.Error(err),
		)
		result = resultInternal
		label = "internal"
	}

	h.grpcMetrics.RecordGRPCRequest("DeductionInventory", strconv.Itoa(result), time.Since(start))
	h.businessMetrics.DeductionsTotal.WithLabelValues(label).Inc()

	return &api.DeductionInventoryResponse{Result: int32(result)}, nil
}
