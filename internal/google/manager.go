package google

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/teemow/calexport/internal/logging"
)

// Manager owns the credential lifecycle: cached token, refresh, interactive
// consent. It never talks to the network when the cached token is still
// valid.
type Manager struct {
	config *oauth2.Config
	store  TokenStore
	flow   AuthorizationFlow
	logger *slog.Logger
}

// NewManager creates a Manager. The store and flow are injected so tests can
// substitute doubles.
func NewManager(config *oauth2.Config, store TokenStore, flow AuthorizationFlow, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		config: config,
		store:  store,
		flow:   flow,
		logger: logging.WithOperation(logger, "google.credential"),
	}
}

// Credential returns a usable OAuth token. It tries, in order: the cached
// token as-is, a refresh of the expired cached token, and finally the
// interactive authorization flow. Every successful obtain or refresh is
// persisted to the store before returning.
func (m *Manager) Credential(ctx context.Context) (*oauth2.Token, error) {
	tok, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load cached credential: %w", err)
	}

	if tok != nil && tok.Valid() {
		m.logger.Debug("using cached credential")
		return tok, nil
	}

	if tok != nil && tok.RefreshToken != "" {
		fresh, refreshErr := m.refresh(ctx, tok)
		if refreshErr == nil {
			return fresh, nil
		}
		// Refresh token revoked or rejected; fall through to re-authorize.
		m.logger.Debug("credential refresh failed, re-authorizing", logging.Err(refreshErr))
	}

	m.logger.Info("starting interactive authorization")
	tok, err = m.flow.Run(ctx, m.config)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(tok); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	return tok, nil
}

// refresh exchanges the expired token's refresh token for a new access token
// and persists the result.
func (m *Manager) refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	fresh, err := m.config.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(fresh); err != nil {
		return nil, fmt.Errorf("persist refreshed credential: %w", err)
	}
	m.logger.Debug("credential refreshed")
	return fresh, nil
}

// TokenSource wraps Credential in an oauth2.TokenSource for the API client.
// The token handed out is the one Credential resolved; the source also lets
// the underlying client refresh transparently mid-run.
func (m *Manager) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := m.Credential(ctx)
	if err != nil {
		return nil, err
	}
	return m.config.TokenSource(ctx, tok), nil
}
