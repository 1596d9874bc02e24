package config

import (
	"testing"
	"time"

	"github.com/qdm12/log"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_String(t *testing.T) {
	t.Parallel()

	var defaultSettings Config
	defaultSettings.SetDefaults()

	s := defaultSettings.String()

	const expected = `Settings summary:
├── HTTP client
|   └── Timeout: 3s
├── DNS resolver: Go default
├── Documentation source: https://raw.githubusercontent.com/PagerDuty/developer-docs/main/docs/webhooks/11-Webhook-IPs.md
├── Webhook IP list sources
|   ├── US: https://app.pagerduty.com/webhook_ips
|   ├── EU: https://app.eu.pagerduty.com/webhook_ips
|   └── Skipped from: 2022-05-05T00:00:00Z
├── Output
|   ├── Region: all
|   └── Format: lines
├── Server
|   ├── Listening address: :8000
|   └── Root URL: /
├── Healthchecks.io: disabled
└── Logger
    ├── Level: INFO
    └── Caller: hidden` //nolint:lll
	assert.Equal(t, expected, s)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(c *Config)
		errWrapped error
		errMessage string
	}{
		"defaults": {
			modify: func(c *Config) {},
		},
		"docs host with scheme": {
			modify: func(c *Config) {
				c.Docs.Host = "https://raw.githubusercontent.com"
			},
			errWrapped: ErrHostHasScheme,
			errMessage: "documentation source settings: host: " +
				"host must not contain a scheme: https://raw.githubusercontent.com",
		},
		"docs relative path": {
			modify: func(c *Config) {
				c.Docs.Path = "README.md"
			},
			errWrapped: ErrPathNotAbsolute,
			errMessage: "documentation source settings: path does not start with /: README.md",
		},
		"webhook relative path": {
			modify: func(c *Config) {
				c.Webhooks.Path = "webhook_ips"
			},
			errWrapped: ErrPathNotAbsolute,
			errMessage: "webhook sources settings: path does not start with /: webhook_ips",
		},
		"unknown region": {
			modify: func(c *Config) {
				c.Output.Region = "apac"
			},
			errWrapped: safelist.ErrRegionUnknown,
			errMessage: `output settings: region is unknown: "apac" must be one of all, us or eu`,
		},
		"client timeout too low": {
			modify: func(c *Config) {
				c.Client.Timeout = time.Millisecond
			},
			errWrapped: ErrClientTimeoutTooLow,
			errMessage: "client settings: HTTP client timeout is too low: 1ms is below the minimum 100ms",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var config Config
			config.SetDefaults()
			testCase.modify(&config)

			err := config.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Config_ToSafelistSettings(t *testing.T) {
	t.Parallel()

	var config Config
	config.Docs.Host = "docs.example.com"
	config.Docs.Path = "/ips.md"
	config.SetDefaults()

	settings := config.ToSafelistSettings()

	require.Len(t, settings.Sources, 3)
	docs := settings.Sources[0]
	assert.Equal(t, safelist.Source{
		Name:   "developer documentation",
		Region: safelist.RegionAll,
		Kind:   safelist.KindMarkdown,
		Host:   "docs.example.com",
		Path:   "/ips.md",
	}, docs)
	for _, source := range settings.Sources[1:] {
		assert.True(t, source.Deprecated)
		assert.Equal(t, safelist.KindJSON, source.Kind)
		assert.Equal(t, "/webhook_ips", source.Path)
	}
	assert.Equal(t, "app.pagerduty.com", settings.Sources[1].Host)
	assert.Equal(t, "app.eu.pagerduty.com", settings.Sources[2].Host)
	assert.Equal(t, time.Date(2022, time.May, 5, 0, 0, 0, 0, time.UTC), settings.Cutover)
}

func Test_Output_toLinesNode_traefik(t *testing.T) {
	t.Parallel()

	settings := Output{
		Region:            safelist.RegionUS,
		Format:            output.FormatTraefik,
		TraefikMiddleware: "pd",
	}

	const expected = `Output
├── Region: us
├── Format: traefik
└── Traefik middleware: pd`
	assert.Equal(t, expected, settings.String())
}

func Test_Logger_ToOptions(t *testing.T) {
	t.Parallel()

	logger := Logger{Caller: ptrTo(true), Level: ptrTo(log.LevelDebug)}
	assert.Len(t, logger.ToOptions(), 3)

	logger = Logger{Caller: ptrTo(false), Level: ptrTo(log.LevelWarn)}
	assert.Len(t, logger.ToOptions(), 1)
}

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errWrapped error
		errMessage string
	}{
		"debug": {
			s:     "DEBUG",
			level: log.LevelDebug,
		},
		"warning": {
			s:     "warning",
			level: log.LevelWarn,
		},
		"invalid": {
			s:          "verbose",
			errWrapped: ErrLogLevelUnknown,
			errMessage: `log level is unknown: "verbose" is not valid ` +
				"and can be one of debug, info, warning or error",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.level, level)
		})
	}
}
