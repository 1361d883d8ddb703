package ctxutil

import (
	"context"
	"time"
)

// DefaultAsyncTimeout is the default timeout for detached operations
const DefaultAsyncTimeout = 5 * time.Second

// Detach returns a context that keeps the values of parent, trace id
// included, but is not cancelled with it.
func Detach(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultAsyncTimeout
	}
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}
