// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kgplan/kgplan/internal/ai"
	"github.com/kgplan/kgplan/internal/config"
	"github.com/kgplan/kgplan/internal/home"
	"github.com/kgplan/kgplan/internal/store"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
//
// The AI splitter is the one service that can be swapped while requests are
// in flight (config hot-reload rebuilds it on the watcher goroutine), so it
// lives behind an accessor instead of an exported field.
type Services struct {
	Store         *store.Store
	ConfigManager *config.Manager
	Logger        *slog.Logger
	Home          *home.Dir

	mu       sync.RWMutex
	splitter *ai.Splitter
}

// SetSplitter swaps the AI splitter. A nil splitter marks AI as unconfigured.
func (s *Services) SetSplitter(splitter *ai.Splitter) {
	s.mu.Lock()
	s.splitter = splitter
	s.mu.Unlock()
}

// Splitter returns the current AI splitter, or nil when unconfigured.
func (s *Services) Splitter() *ai.Splitter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.splitter
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// StoreFrom extracts the plan store from context.
func StoreFrom(ctx context.Context) *store.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Store
	}
	return nil
}

// ConfigManagerFrom extracts the config manager from context.
func ConfigManagerFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigManager
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// SplitterFrom extracts the AI splitter from context.
func SplitterFrom(ctx context.Context) *ai.Splitter {
	if s := ServicesFrom(ctx); s != nil {
		return s.Splitter()
	}
	return nil
}
