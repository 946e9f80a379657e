package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Runner executes fn somewhere and waits for it. *queue.Pool satisfies it.
type Runner interface {
	Do(ctx context.Context, fn func()) error
}

var errHashNotProduced = errors.New("password hash was not produced")

// BcryptHasher hashes passwords with bcrypt. When a Runner is set the work
// is scheduled on it so hashing cannot starve request handling.
type BcryptHasher struct {
	cost   int
	runner Runner
}

// NewBcryptHasher clamps cost to bcrypt's accepted range. runner may be nil,
// in which case hashing happens on the calling goroutine.
func NewBcryptHasher(cost int, runner Runner) *BcryptHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost, runner: runner}
}

// Cost returns the effective work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

func (h *BcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var (
		out     []byte
		hashErr error
	)
	if err := h.exec(ctx, func() {
		out, hashErr = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	}); err != nil {
		return "", err
	}
	if hashErr != nil {
		return "", hashErr
	}
	if len(out) == 0 {
		return "", errHashNotProduced
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(ctx context.Context, plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	var ok bool
	if err := h.exec(ctx, func() {
		ok = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}); err != nil {
		return false
	}
	return ok
}

func (h *BcryptHasher) exec(ctx context.Context, fn func()) error {
	if h.runner == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn()
		return nil
	}
	return h.runner.Do(ctx, fn)
}
