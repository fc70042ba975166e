// Package appconfig resolves feature-flag values for client applications
// from AWS AppConfig, either through the AppConfigData service or a local
// AppConfig agent. Flags are single scalar values or multi-variant flags
// with attribute-based targeting.
package appconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine"
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/flags"
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/source"
)

// Provider resolves flag values for one AppConfig configuration profile.
// It is safe for concurrent use.
type Provider struct {
	application string
	environment string
	profile     string

	source    source.Source
	session   sessionManager
	agentURL  string
	awsConfig *aws.Config
	timeout   time.Duration
	log       *slog.Logger
}

// New creates a Provider for the given application, environment and
// configuration profile with the given options. The default transport is
// the AppConfigData service using the default AWS credential chain.
func New(application, environment, profile string, options ...Option) (*Provider, error) {
	p := &Provider{
		application: application,
		environment: environment,
		profile:     profile,
		timeout:     DefaultTimeout,
		log:         slog.Default(),
	}

	for _, opt := range options {
		opt(p)
	}

	if p.source == nil {
		if p.agentURL != "" {
			p.source = source.NewAgent(p.agentURL, application, environment, profile, p.timeout, p.log)
		} else {
			cfg := p.awsConfig
			if cfg == nil {
				loaded, err := awsconfig.LoadDefaultConfig(context.Background())
				if err != nil {
					return nil, fmt.Errorf("load aws config: %w", err)
				}
				cfg = &loaded
			}
			p.source = source.NewAppConfigData(*cfg, application, environment, profile)
		}
	}

	return p, nil
}

// ResolveBooleanValue resolves a flag as a boolean.
func (p *Provider) ResolveBooleanValue(ctx context.Context, flagKey string, evalCtx *EvaluationContext) BoolResolutionDetail {
	res := p.resolve(ctx, flagKey, flagengine.Boolean, evalCtx)
	return BoolResolutionDetail{Value: res.Value.(bool), ResolutionDetail: detailOf(res)}
}

// ResolveStringValue resolves a flag as a string.
func (p *Provider) ResolveStringValue(ctx context.Context, flagKey string, evalCtx *EvaluationContext) StringResolutionDetail {
	res := p.resolve(ctx, flagKey, flagengine.String, evalCtx)
	return StringResolutionDetail{Value: res.Value.(string), ResolutionDetail: detailOf(res)}
}

// ResolveNumberValue resolves a flag as a number.
func (p *Provider) ResolveNumberValue(ctx context.Context, flagKey string, evalCtx *EvaluationContext) NumberResolutionDetail {
	res := p.resolve(ctx, flagKey, flagengine.Number, evalCtx)
	return NumberResolutionDetail{Value: res.Value.(float64), ResolutionDetail: detailOf(res)}
}

// ResolveObjectValue resolves a flag as a structured object.
func (p *Provider) ResolveObjectValue(ctx context.Context, flagKey string, evalCtx *EvaluationContext) ObjectResolutionDetail {
	res := p.resolve(ctx, flagKey, flagengine.Object, evalCtx)
	return ObjectResolutionDetail{Value: res.Value.(map[string]interface{}), ResolutionDetail: detailOf(res)}
}

// BooleanValue resolves a flag as a boolean, substituting defaultValue on
// a failed resolution.
func (p *Provider) BooleanValue(ctx context.Context, flagKey string, defaultValue bool, evalCtx *EvaluationContext) bool {
	detail := p.ResolveBooleanValue(ctx, flagKey, evalCtx)
	if detail.Reason == flagengine.ReasonError {
		return defaultValue
	}
	return detail.Value
}

// StringValue resolves a flag as a string, substituting defaultValue on a
// failed resolution.
func (p *Provider) StringValue(ctx context.Context, flagKey string, defaultValue string, evalCtx *EvaluationContext) string {
	detail := p.ResolveStringValue(ctx, flagKey, evalCtx)
	if detail.Reason == flagengine.ReasonError {
		return defaultValue
	}
	return detail.Value
}

// NumberValue resolves a flag as a number, substituting defaultValue on a
// failed resolution.
func (p *Provider) NumberValue(ctx context.Context, flagKey string, defaultValue float64, evalCtx *EvaluationContext) float64 {
	detail := p.ResolveNumberValue(ctx, flagKey, evalCtx)
	if detail.Reason == flagengine.ReasonError {
		return defaultValue
	}
	return detail.Value
}

// ObjectValue resolves a flag as a structured object, substituting
// defaultValue on a failed resolution.
func (p *Provider) ObjectValue(ctx context.Context, flagKey string, defaultValue map[string]interface{}, evalCtx *EvaluationContext) map[string]interface{} {
	detail := p.ResolveObjectValue(ctx, flagKey, evalCtx)
	if detail.Reason == flagengine.ReasonError {
		return defaultValue
	}
	return detail.Value
}

// resolve runs one synchronous resolution: ensure a session, fetch the
// configuration snapshot, and evaluate the flag. Every failure is folded
// into an ERROR resolution here; callers never see a raw error.
func (p *Provider) resolve(ctx context.Context, flagKey string, typ flagengine.ValueType, evalCtx *EvaluationContext) flagengine.Resolution {
	payload, err := p.fetch(ctx)
	if err != nil {
		p.log.Error("flag resolution failed", "flag", flagKey, "error", err)
		return flagengine.ErrorResolution(typ, flagengine.ErrorCodeGeneral, err.Error())
	}

	cfg, err := flags.ParseConfiguration(payload)
	if err != nil {
		p.log.Error("flag resolution failed", "flag", flagKey, "error", err)
		return flagengine.ErrorResolution(typ, flagengine.ErrorCodeParseError, err.Error())
	}

	var attributes map[string]interface{}
	if evalCtx != nil {
		attributes = evalCtx.attributes
	}
	res := flagengine.Evaluate(cfg, flagKey, typ, attributes)
	if res.Reason == flagengine.ReasonError {
		p.log.Error("flag resolution failed", "flag", flagKey, "error", res.ErrorMessage)
	}
	return res
}

// fetch retrieves the current configuration payload. A fetch rejected
// with an expired session token triggers exactly one session refresh and
// retry; a second expiry surfaces as an error.
func (p *Provider) fetch(ctx context.Context) ([]byte, error) {
	token, err := p.session.ensure(ctx, p.source)
	if err != nil {
		return nil, err
	}

	payload, next, err := p.source.FetchConfiguration(ctx, token)
	if errors.Is(err, source.ErrSessionExpired) {
		p.log.Debug("configuration session expired, starting a new one")
		p.session.invalidate(token)
		token, err = p.session.ensure(ctx, p.source)
		if err != nil {
			return nil, err
		}
		payload, next, err = p.source.FetchConfiguration(ctx, token)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch configuration: %w", err)
	}

	p.session.advance(token, next)
	return payload, nil
}
