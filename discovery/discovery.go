// Package discovery is the fleet's registry client: each service
// registers itself with the discovery agent at startup and resolves
// peers by name when it needs to dial them.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrNotResolved is returned by Resolve when no registered instance
// matches the filter, or when the agent cannot be reached. Callers get
// one generic discovery error either way.
var ErrNotResolved = errors.New("service not resolved")

// Check defaults applied when a Registration leaves them empty.
const (
	DefaultCheckInterval   = "20s"
	DefaultDeregisterAfter = "30m"
)

// Registration describes one service instance and the health check the
// agent should run against it. The agent GETs HealthURL every Interval
// and drops the instance after DeregisterAfter of continuous failure.
type Registration struct {
	ID              string
	Name            string
	Tags            []string
	Address         string
	Port            int
	HealthURL       string
	Interval        string
	DeregisterAfter string
}

// Service is one instance as the agent reports it.
type Service struct {
	ID         string
	Service    string
	Tags       []string
	Address    string
	Port       int
	Datacenter string
}

// Endpoint returns the dialable "host:port" of the instance.
func (s Service) Endpoint() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// Filter selects instances by exact service name or instance id.
// Either field alone is enough to match.
type Filter struct {
	ID      string
	Service string
}

// Matches reports whether the instance satisfies the filter.
func (f Filter) Matches(s Service) bool {
	if f.ID != "" && f.ID == s.ID {
		return true
	}
	if f.Service != "" && f.Service == s.Service {
		return true
	}
	return false
}

// Registry is the discovery agent client. Register is called once at
// process startup, Deregister on shutdown. Resolve performs a fresh
// lookup on every call: no caching, no ranking, no sticky routing.
type Registry interface {
	Register(ctx context.Context, reg Registration) error
	Deregister(ctx context.Context, serviceID string) error
	Services(ctx context.Context) (map[string]Service, error)
	Resolve(ctx context.Context, filter Filter) (Service, error)
}

// GenerateInstanceID produces a unique "name-<rand>" instance id so
// multiple instances of one service can register side by side.
func GenerateInstanceID(serviceName string) string {
	return fmt.Sprintf("%s-%d", serviceName, rand.New(rand.NewSource(time.Now().UnixNano())).Int())
}
