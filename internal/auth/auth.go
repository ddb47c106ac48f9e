// Package auth is the single shared-password admin gate. The logged-in state
// is a flag in the durable store; no hardening is attempted.
package auth

import (
	"context"

	"resto-pos/internal/store"

	"github.com/rs/zerolog"
)

// Gate guards the staff-facing surfaces behind the configured password.
type Gate struct {
	store    store.Store
	password string
	logger   zerolog.Logger
}

// NewGate creates a gate with the deployment's admin password.
func NewGate(st store.Store, password string, logger zerolog.Logger) *Gate {
	return &Gate{
		store:    st,
		password: password,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login sets the logged-in flag when password matches. It reports whether
// the attempt succeeded.
func (g *Gate) Login(ctx context.Context, password string) (bool, error) {
	if password != g.password {
		g.logger.Warn().Msg("failed login attempt")
		return false, nil
	}
	if err := g.store.Set(ctx, store.KeyLoggedIn, []byte("true")); err != nil {
		return false, err
	}
	g.logger.Info().Msg("admin logged in")
	return true, nil
}

// IsLoggedIn reports whether the gate is currently open.
func (g *Gate) IsLoggedIn(ctx context.Context) (bool, error) {
	raw, ok, err := g.store.Get(ctx, store.KeyLoggedIn)
	if err != nil {
		return false, err
	}
	return ok && string(raw) == "true", nil
}

// Logout clears the logged-in flag.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Delete(ctx, store.KeyLoggedIn)
}
