package main

import (
	"context"
	"fmt"

	"github.com/minimart/minimart/common/api"
	"github.com/minimart/minimart/discovery"
)

// inventoryClient resolves the inventory service through the registry
// on every call and performs the deduction RPC. Resolution is fresh
// each time so a restarted instance is picked up without state.
type inventoryClient struct {
	registry    discovery.Registry
	serviceName string
}

func NewInventoryClient(registry discovery.Registry, serviceName string) *inventoryClient {
	return &inventoryClient{registry: registry, serviceName: serviceName}
}

func (c *inventoryClient) Deduct(ctx context.Context, inventoryID, count, orderID int32) (int32, error) {
	conn, err := discovery.ServiceConnection(ctx, discovery.Filter{Service: c.serviceName}, c.registry)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", c.serviceName, err)
	}
	defer conn.Close()

	resp, err := api.NewInventoryServiceClient(conn).DeductionInventory(ctx, &api.DeductionInventoryRequest{
		InventoryId:    inventoryID,
		DeductionCount: count,
		OrdersId:       orderID,
	})
	if err != nil {
		return 0, fmt.Errorf("deduction call failed: %w", err)
	}

	return resp.GetResult(), nil
}

var _ InventoryClient = (*inventoryClient)(nil)
