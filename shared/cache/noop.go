package cache

import (
	"context"
	"fmt"
)

// Noop is a RedisCache that stores nothing. Every read is a miss.
type Noop struct{}

func (Noop) Save(context.Context, string, any, int) error { return nil }

func (Noop) Get(_ context.Context, key string, _ any) error {
	return fmt.Errorf("failed to get cache value %s: %w", key, Nil)
}

func (Noop) Take(_ context.Context, key string, _ any) error {
	return fmt.Errorf("failed to take cache value %s: %w", key, Nil)
}

func (Noop) Delete(context.Context, string) error { return nil }
func (Noop) Clear(context.Context, string) error  { return nil }
