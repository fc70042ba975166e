package source

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/aws/aws-sdk-go-v2/service/appconfigdata/types"
)

// AppConfigDataClient defines the AppConfigData operations used by the
// SDK source.
type AppConfigDataClient interface {
	StartConfigurationSession(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error)
	GetLatestConfiguration(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error)
}

// AppConfigData fetches configuration through the AppConfigData service
// using session tokens. The service returns an empty body when the
// configuration has not changed since the last poll, so the source keeps
// the last non-empty payload and replays it in that case.
type AppConfigData struct {
	client      AppConfigDataClient
	application string
	environment string
	profile     string

	mu          sync.Mutex
	lastPayload []byte
}

// NewAppConfigData creates an SDK source for one configuration profile.
func NewAppConfigData(cfg aws.Config, application, environment, profile string) *AppConfigData {
	return NewAppConfigDataFromClient(appconfigdata.NewFromConfig(cfg), application, environment, profile)
}

// NewAppConfigDataFromClient is like NewAppConfigData with an explicit
// client, typically a test double.
func NewAppConfigDataFromClient(client AppConfigDataClient, application, environment, profile string) *AppConfigData {
	return &AppConfigData{
		client:      client,
		application: application,
		environment: environment,
		profile:     profile,
	}
}

func (s *AppConfigData) StartSession(ctx context.Context) (string, error) {
	out, err := s.client.StartConfigurationSession(ctx, &appconfigdata.StartConfigurationSessionInput{
		ApplicationIdentifier:          aws.String(s.application),
		EnvironmentIdentifier:          aws.String(s.environment),
		ConfigurationProfileIdentifier: aws.String(s.profile),
	})
	if err != nil {
		return "", mapError(err)
	}
	return aws.ToString(out.InitialConfigurationToken), nil
}

func (s *AppConfigData) FetchConfiguration(ctx context.Context, token string) ([]byte, string, error) {
	out, err := s.client.GetLatestConfiguration(ctx, &appconfigdata.GetLatestConfigurationInput{
		ConfigurationToken: aws.String(token),
	})
	if err != nil {
		return nil, "", mapError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(out.Configuration) > 0 {
		s.lastPayload = out.Configuration
	}
	return s.lastPayload, aws.ToString(out.NextPollConfigurationToken), nil
}

// mapError translates AppConfigData service errors into the source's
// sentinel conditions. An expired or already-used token surfaces as a
// BadRequestException.
func mapError(err error) error {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, notFound.ErrorMessage())
	}
	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return fmt.Errorf("%w: %s", ErrThrottled, throttled.ErrorMessage())
	}
	var badRequest *types.BadRequestException
	if errors.As(err, &badRequest) {
		return fmt.Errorf("%w: %s", ErrSessionExpired, badRequest.ErrorMessage())
	}
	return err
}
