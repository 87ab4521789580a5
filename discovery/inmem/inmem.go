// Package inmem is an in-memory registry for tests and local runs
// where no Consul agent is available.
package inmem

import (
	"context"
	"sync"

	"github.com/minimart/minimart/discovery"
)

type Registry struct {
	sync.RWMutex
	services map[string]discovery.Service
}

func NewRegistry() *Registry {
	return &Registry{services: map[string]discovery.Service{}}
}

func (r *Registry) Register(ctx context.Context, reg discovery.Registration) error {
	r.Lock()
	defer r.Unlock()

	r.services[reg.ID] = discovery.Service{
		ID:      reg.ID,
		Service: reg.Name,
		Tags:    reg.Tags,
		Address: reg.Address,
		Port:    reg.Port,
	}

	return nil
}

func (r *Registry) Deregister(ctx context.Context, serviceID string) error {
	r.Lock()
	defer r.Unlock()

	delete(r.services, serviceID)

	return nil
}

func (r *Registry) Services(ctx context.Context) (map[string]discovery.Service, error) {
	r.RLock()
	defer r.RUnlock()

	services := make(map[string]discovery.Service, len(r.services))
	for id, s := range r.services {
		services[id] = s
	}

	return services, nil
}

func (r *Registry) Resolve(ctx context.Context, filter discovery.Filter) (discovery.Service, error) {
	services, err := r.Services(ctx)
	if err != nil {
		return discovery.Service{}, err
	}

	for _, s := range services {
		if filter.Matches(s) {
			return s, nil
		}
	}

	return discovery.Service{}, discovery.ErrNotResolved
}

var _ discovery.Registry = (*Registry)(nil)
