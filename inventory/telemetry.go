package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

type TelemetryMiddleware struct {
	next InventoryService
}

func NewTelemetryMiddleware(next InventoryService) InventoryService {
	return &TelemetryMiddleware{next}
}

func (s *TelemetryMiddleware) Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("Deduct: inventory=%d count=%d order=%d", inventoryID, count, orderID))

	return s.next.Deduct(ctx, inventoryID, count, orderID, description)
}

func (s *TelemetryMiddleware) Add(ctx context.Context, inventoryID, count int32, description string) error {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("Add: inventory=%d count=%d", inventoryID, count))

	return s.next.Add(ctx, inventoryID, count, description)
}

func (s *TelemetryMiddleware) Query(ctx context.Context, inventoryID int32) (*Inventory, error) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("Query: inventory=%d", inventoryID))

	return s.next.Query(ctx, inventoryID)
}

func (s *TelemetryMiddleware) History(ctx context.Context, inventoryID int32) ([]InventoryChange, error) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(fmt.Sprintf("History: inventory=%d", inventoryID))

	return s.next.History(ctx, inventoryID)
}
