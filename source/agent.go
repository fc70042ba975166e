package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Agent fetches configuration from a local AppConfig agent. The agent
// owns session handling itself, so this source is stateless and its
// tokens are empty.
type Agent struct {
	client   *resty.Client
	path     string
	clientID string
}

// NewAgent creates an agent source for one configuration profile served
// at baseURL, typically http://localhost:2772.
func NewAgent(baseURL, application, environment, profile string, timeout time.Duration, logger *slog.Logger) *Agent {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetLogger(restySlogLogger{logger: logger}).
		SetHeader("Accept", "application/json")

	return &Agent{
		client:   client,
		path:     fmt.Sprintf("/applications/%s/environments/%s/configurations/%s", application, environment, profile),
		clientID: uuid.NewString(),
	}
}

func (a *Agent) StartSession(ctx context.Context) (string, error) {
	return "", nil
}

func (a *Agent) FetchConfiguration(ctx context.Context, token string) ([]byte, string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("X-Client-Id", a.clientID).
		Get(a.path)
	if err != nil {
		return nil, "", fmt.Errorf("fetch configuration from agent: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, "", fmt.Errorf("%w: agent returned %s", ErrNotFound, resp.Status())
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, "", fmt.Errorf("%w: agent returned %s", ErrThrottled, resp.Status())
	case resp.IsError():
		return nil, "", fmt.Errorf("agent returned %s", resp.Status())
	}
	return resp.Body(), token, nil
}
