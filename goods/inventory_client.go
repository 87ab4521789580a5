package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/minimart/minimart/discovery"
)

// inventoryClient resolves an inventory instance through the registry
// on every call and asks it for the live stock count over REST.
type inventoryClient struct {
	registry    discovery.Registry
	serviceName string
	client      *http.Client
}

func NewInventoryClient(registry discovery.Registry, serviceName string) *inventoryClient {
	return &inventoryClient{
		registry:    registry,
		serviceName: serviceName,
		client:      &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *inventoryClient) Count(ctx context.Context, inventoryID int32) (int32, error) {
	svc, err := c.registry.Resolve(ctx, discovery.Filter{Service: c.serviceName})
	if err != nil {
		return 0, fmt.Errorf("failed to resolve inventory service: %w", err)
	}

	url := fmt.Sprintf("http://%s/query_inventory?id=%d", svc.Endpoint(), inventoryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build inventory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("inventory query returned %s", resp.Status)
	}

	var body struct {
		Count int32 `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode inventory response: %w", err)
	}
	return body.Count, nil
}

var _ InventoryCounter = (*inventoryClient)(nil)
