package utils

import (
	"context"
	"time"
)

const dbTimeout = 5 * time.Second

// WithDBTimeout bounds a repository call so a stuck datastore cannot
// hold a request open indefinitely.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}
