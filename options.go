package appconfig

import (
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/source"
)

type Option func(p *Provider)

var _ = []Option{
	WithConfigurationSource(nil),
	WithAgentURL(""),
	WithAWSConfig(aws.Config{}),
	WithRequestTimeout(0),
	WithLogger(nil),
}

// WithConfigurationSource uses the given source instead of constructing
// one. It takes precedence over WithAgentURL and WithAWSConfig.
func WithConfigurationSource(src source.Source) Option {
	return func(p *Provider) {
		p.source = src
	}
}

// WithAgentURL fetches configuration from a local AppConfig agent at the
// given base URL instead of the AppConfigData service.
func WithAgentURL(url string) Option {
	return func(p *Provider) {
		p.agentURL = url
	}
}

// WithAWSConfig supplies the AWS configuration used to build the
// AppConfigData client. Without it the default credential chain is used.
func WithAWSConfig(cfg aws.Config) Option {
	return func(p *Provider) {
		p.awsConfig = &cfg
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.log = logger
	}
}
