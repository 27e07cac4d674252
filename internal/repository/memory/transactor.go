package memory

import (
	"context"
	"sync"

	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
)

type txKey struct{}

// transactor serializes units of work. There is no rollback: callers write
// once, after every check has passed.
type transactor struct {
	mu sync.Mutex
}

func NewTransactor() database.Transactor {
	return &transactor{}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}
