package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix for all environment variables read by
// [OptionsFromEnv] and [RegionFromEnv], e.g. STOREFRONT_TIMEOUT.
const envPrefix = "storefront"

type envSettings struct {
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"12s"`
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	UserAgent   string        `envconfig:"USER_AGENT"`
}

type envRegion struct {
	APIBaseURL     string `envconfig:"API_BASE_URL" required:"true"`
	Language       string `envconfig:"LANGUAGE" default:"en"`
	Region         string `envconfig:"REGION" default:"us"`
	Channel        string `envconfig:"CHANNEL" default:"default"`
	AppVersion     string `envconfig:"APP_VERSION"`
	AppID          string `envconfig:"APP_ID"`
	Timezone       string `envconfig:"TIMEZONE" default:"UTC"`
	TimezoneOffset string `envconfig:"TIMEZONE_OFFSET" default:"0"`
	AcceptLanguage string `envconfig:"ACCEPT_LANGUAGE" default:"en"`
}

// OptionsFromEnv builds client options from STOREFRONT_-prefixed environment
// variables: STOREFRONT_TIMEOUT, STOREFRONT_MAX_ATTEMPTS and
// STOREFRONT_USER_AGENT. Unlike the With* options, which silently ignore bad
// values supplied in code, environment input is untrusted and is validated
// loudly.
func OptionsFromEnv() ([]Option, error) {
	var s envSettings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return nil, fmt.Errorf("load client settings from environment: %w", err)
	}

	candidate := newClientOptions()
	candidate.timeout = s.Timeout
	candidate.maxAttempts = s.MaxAttempts
	if s.UserAgent != "" {
		candidate.userAgent = s.UserAgent
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	opts := []Option{
		WithTimeout(s.Timeout),
		WithMaxAttempts(s.MaxAttempts),
	}
	if s.UserAgent != "" {
		opts = append(opts, WithUserAgent(s.UserAgent))
	}
	return opts, nil
}

// RegionFromEnv builds a static [RegionSource] from STOREFRONT_-prefixed
// environment variables. STOREFRONT_API_BASE_URL is required; the locale
// fields fall back to neutral defaults. Deployments that switch regions at
// runtime should supply their own RegionSource instead.
func RegionFromEnv() (RegionSource, error) {
	var r envRegion
	if err := envconfig.Process(envPrefix, &r); err != nil {
		return nil, fmt.Errorf("load region profile from environment: %w", err)
	}

	return StaticRegion(RegionProfile{
		APIBaseURL:     r.APIBaseURL,
		Language:       r.Language,
		Region:         r.Region,
		Channel:        r.Channel,
		AppVersion:     r.AppVersion,
		AppID:          r.AppID,
		Timezone:       r.Timezone,
		TimezoneOffset: r.TimezoneOffset,
		AcceptLanguage: r.AcceptLanguage,
	}), nil
}
