package metrics

import (
	"context"
	"time"

	"github.com/99minutos/todo-service/internal/core/ports"
)

type instrumentedHasher struct {
	next ports.PasswordHasher
}

// InstrumentHasher records PasswordHashDuration around every call to h.
func InstrumentHasher(h ports.PasswordHasher) ports.PasswordHasher {
	return &instrumentedHasher{next: h}
}

func (h *instrumentedHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	defer func() { PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds()) }()
	return h.next.Hash(ctx, plaintext)
}

func (h *instrumentedHasher) Verify(ctx context.Context, plaintext, hash string) bool {
	start := time.Now()
	defer func() { PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds()) }()
	return h.next.Verify(ctx, plaintext, hash)
}
