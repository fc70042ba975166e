// Package source provides the configuration-source transports the
// provider fetches raw flag payloads from: the AWS AppConfigData service
// and the local AppConfig agent.
package source

import (
	"context"
	"errors"
)

// Sentinel conditions a Source reports. Implementations wrap these so
// callers can branch with errors.Is.
var (
	// ErrNotFound means the application, environment or configuration
	// profile does not exist.
	ErrNotFound = errors.New("configuration not found")
	// ErrThrottled means the source rejected the request due to rate
	// limiting.
	ErrThrottled = errors.New("request throttled by configuration source")
	// ErrSessionExpired means the session token is no longer valid and a
	// new session must be started.
	ErrSessionExpired = errors.New("configuration session expired")
)

// Source fetches raw configuration payloads for one configuration
// profile. Tokens are opaque to callers: they are obtained from
// StartSession, handed back to FetchConfiguration, and replaced by the
// returned next token.
type Source interface {
	StartSession(ctx context.Context) (token string, err error)
	FetchConfiguration(ctx context.Context, token string) (payload []byte, nextToken string, err error)
}
