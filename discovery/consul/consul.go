// Package consul implements the registry client against a Consul
// agent's HTTP API.
package consul

import (
	"context"
	"fmt"
	"net/http"
	"time"

	consul "github.com/hashicorp/consul/api"

	"github.com/minimart/minimart/discovery"
)

// Registry talks to one Consul agent. Every call is a fresh HTTP
// round trip bounded by a one second client timeout.
type Registry struct {
	client *consul.Client
}

func NewRegistry(addr string) (*Registry, error) {
	config := consul.DefaultConfig()
	config.Address = addr
	config.HttpClient = &http.Client{Timeout: time.Second}

	client, err := consul.NewClient(config)
	if err != nil {
		return nil, err
	}

	return &Registry{client: client}, nil
}

// Register puts the instance into the agent's catalog together with an
// HTTP health check. The agent GETs the health URL every Interval and
// removes the instance after DeregisterAfter of continuous failure.
func (r *Registry) Register(ctx context.Context, reg discovery.Registration) error {
	interval := reg.Interval
	if interval == "" {
		interval = discovery.DefaultCheckInterval
	}
	deregisterAfter := reg.DeregisterAfter
	if deregisterAfter == "" {
		deregisterAfter = discovery.DefaultDeregisterAfter
	}

	return r.client.Agent().ServiceRegister(&consul.AgentServiceRegistration{
		ID:      reg.ID,
		Name:    reg.Name,
		Tags:    reg.Tags,
		Address: reg.Address,
		Port:    reg.Port,
		Check: &consul.AgentServiceCheck{
			HTTP:                           reg.HealthURL,
			Interval:                       interval,
			DeregisterCriticalServiceAfter: deregisterAfter,
		},
	})
}

func (r *Registry) Deregister(ctx context.Context, serviceID string) error {
	return r.client.Agent().ServiceDeregister(serviceID)
}

// Services lists every instance the agent currently knows.
func (r *Registry) Services(ctx context.Context) (map[string]discovery.Service, error) {
	agentServices, err := r.client.Agent().Services()
	if err != nil {
		return nil, err
	}

	services := make(map[string]discovery.Service, len(agentServices))
	for id, s := range agentServices {
		services[id] = discovery.Service{
			ID:         s.ID,
			Service:    s.Service,
			Tags:       s.Tags,
			Address:    s.Address,
			Port:       s.Port,
			Datacenter: s.Datacenter,
		}
	}

	return services, nil
}

// Resolve lists the catalog and returns the first instance the filter
// matches. Agent failure and no-match both surface as ErrNotResolved.
func (r *Registry) Resolve(ctx context.Context, filter discovery.Filter) (discovery.Service, error) {
	services, err := r.Services(ctx)
	if err != nil {
		return discovery.Service{}, fmt.Errorf("%w: %v", discovery.ErrNotResolved, err)
	}

	for _, s := range services {
		if filter.Matches(s) {
			return s, nil
		}
	}

	return discovery.Service{}, discovery.ErrNotResolved
}

var _ discovery.Registry = (*Registry)(nil)
