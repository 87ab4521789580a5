package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type TelemetryMiddleware struct {
	next OrdersService
}

func NewTelemetryMiddleware(next OrdersService) OrdersService {
	return &TelemetryMiddleware{next}
}

func (s *TelemetryMiddleware) CreateOrder(ctx context.Context, userID uuid.UUID, req AddOrder) (int32, error) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("CreateOrder: user=%s item=%d count=%d", userID, req.ItemsID, req.Count))

	return s.next.CreateOrder(ctx, userID, req)
}

func (s *TelemetryMiddleware) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("ListOrders: user=%s page=%d page_size=%d", userID, page, pageSize))

	return s.next.ListOrders(ctx, userID, page, pageSize)
}

func (s *TelemetryMiddleware) NewOrderToken(ctx context.Context) int64 {
	span := trace.SpanFromContext(ctx)
	span.AddEvent("NewOrderToken")

	return s.next.NewOrderToken(ctx)
}
