package appconfig

import (
	"context"
	"fmt"
	"sync"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/source"
)

// sessionManager owns the configuration-source session token. The token
// swaps under one mutex so concurrent resolutions never race to create
// duplicate sessions or observe a half-updated token.
type sessionManager struct {
	mu    sync.Mutex
	token string
}

// ensure returns the current token, starting a session first if none is
// active.
func (s *sessionManager) ensure(ctx context.Context, src source.Source) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" {
		return s.token, nil
	}
	token, err := src.StartSession(ctx)
	if err != nil {
		return "", fmt.Errorf("start configuration session: %w", err)
	}
	s.token = token
	return token, nil
}

// advance stores the rotated token returned by a fetch. The swap only
// happens while old is still current, so a concurrent refresh is not
// clobbered with a stale token.
func (s *sessionManager) advance(old, next string) {
	if next == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == old {
		s.token = next
	}
}

// invalidate drops the token after an expiry signal, only if it is still
// the one that expired.
func (s *sessionManager) invalidate(expired string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == expired {
		s.token = ""
	}
}
