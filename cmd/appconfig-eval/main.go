// appconfig-eval resolves a single feature flag against AWS AppConfig or
// a local AppConfig agent and prints the resolution detail as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/naviplus-asp/openfeature-provider-go-aws-appconfig"
)

var attrs []string

var rootCmd = &cobra.Command{
	Use:   "appconfig-eval <flag-key>",
	Short: "Resolve a feature flag from AWS AppConfig",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringP("application", "a", "", "AppConfig application identifier")
	rootCmd.Flags().StringP("environment", "e", "", "AppConfig environment identifier")
	rootCmd.Flags().StringP("profile", "p", "", "AppConfig configuration profile identifier")
	rootCmd.Flags().String("agent-url", "", "resolve through a local AppConfig agent at this base URL instead of the AppConfigData service")
	rootCmd.Flags().StringP("type", "t", "string", "requested value type: boolean, string, number or object")
	rootCmd.Flags().StringP("targeting-key", "k", "", "subject identifier for the evaluation context")
	rootCmd.Flags().StringArrayVar(&attrs, "attr", nil, "evaluation context attribute as key=value (repeatable)")

	for _, name := range []string{"application", "environment", "profile", "agent-url", "type", "targeting-key"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("APPCONFIG_EVAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	flagKey := args[0]

	var options []appconfig.Option
	if url := viper.GetString("agent-url"); url != "" {
		options = append(options, appconfig.WithAgentURL(url))
	}
	provider, err := appconfig.New(
		viper.GetString("application"),
		viper.GetString("environment"),
		viper.GetString("profile"),
		options...,
	)
	if err != nil {
		return err
	}

	attributes := make(map[string]interface{}, len(attrs))
	for _, attr := range attrs {
		key, value, found := strings.Cut(attr, "=")
		if !found {
			return fmt.Errorf("invalid attribute %q, expected key=value", attr)
		}
		attributes[key] = value
	}
	evalCtx := appconfig.NewEvaluationContext(viper.GetString("targeting-key"), attributes)

	ctx := context.Background()
	var detail interface{}
	switch viper.GetString("type") {
	case "boolean":
		detail = provider.ResolveBooleanValue(ctx, flagKey, &evalCtx)
	case "string":
		detail = provider.ResolveStringValue(ctx, flagKey, &evalCtx)
	case "number":
		detail = provider.ResolveNumberValue(ctx, flagKey, &evalCtx)
	case "object":
		detail = provider.ResolveObjectValue(ctx, flagKey, &evalCtx)
	default:
		return fmt.Errorf("unknown type %q", viper.GetString("type"))
	}

	out, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
