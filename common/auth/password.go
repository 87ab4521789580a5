package auth

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher runs bcrypt off the request goroutine through a bounded pool,
// so a burst of signups cannot starve the request path.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher builds a hasher allowing at most maxConcurrent hashes in
// flight; zero or negative means one per CPU.
func NewHasher(maxConcurrent int64) *Hasher {
	if maxConcurrent <= 0 {
		maxConcurrent = int64(runtime.GOMAXPROCS(0))
	}
	return &Hasher{
		cost: bcrypt.DefaultCost,
		sem:  semaphore.NewWeighted(maxConcurrent),
	}
}

// Hash derives a bcrypt hash of the password. Blocks while the pool is
// saturated; honors ctx cancellation both while queued and mid-hash.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}

	type result struct {
		hash []byte
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		defer h.sem.Release(1)
		hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		ch <- result{hash, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("failed to hash password: %w", r.err)
		}
		return string(r.hash), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Compare checks a password against its stored hash through the same
// pool. Returns bcrypt.ErrMismatchedHashAndPassword on mismatch.
func (h *Hasher) Compare(ctx context.Context, hash, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	ch := make(chan error, 1)

	go func() {
		defer h.sem.Release(1)
		ch <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
