package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/reader/sources/env"
	"github.com/qdm12/log"
	"github.com/qdm12/pd-safelist/internal/config"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGatherer struct {
	ips     safelist.Set
	regions []safelist.Region
}

func (g *testGatherer) Safelist(_ context.Context, region safelist.Region) safelist.Set {
	g.regions = append(g.regions, region)
	return g.ips
}

type testHealthchecksIO struct {
	reports []string
	err     error
}

func (h *testHealthchecksIO) Start(context.Context) error {
	h.reports = append(h.reports, "start")
	return h.err
}

func (h *testHealthchecksIO) Finish(_ context.Context, region string, ipsCount int) error {
	h.reports = append(h.reports, "finish "+region+" "+strconv.Itoa(ipsCount))
	return h.err
}

type testWarner struct {
	messages []string
}

func (w *testWarner) Warn(message string) {
	w.messages = append(w.messages, message)
}

func Test_printSafelist(t *testing.T) {
	t.Parallel()

	errPing := errors.New("test ping error")

	testCases := map[string]struct {
		ips          safelist.Set
		settings     config.Output
		pingErr      error
		stdout       string
		reports      []string
		warnMessages []string
	}{
		"empty_safelist": {
			ips: safelist.NewSet(),
			settings: config.Output{
				Region: safelist.RegionEU,
				Format: output.FormatLines,
			},
			reports: []string{"start", "finish eu 0"},
			warnMessages: []string{
				"no IP address found for region eu",
			},
		},
		"sorted_lines": {
			ips: safelist.NewSet("44.242.69.192", "3.18.12.63", "44.242.69.192"),
			settings: config.Output{
				Region: safelist.RegionAll,
				Format: output.FormatLines,
			},
			stdout:  "3.18.12.63\n44.242.69.192\n",
			reports: []string{"start", "finish all 2"},
		},
		"json_with_ping_errors": {
			ips: safelist.NewSet("1.2.3.4"),
			settings: config.Output{
				Region: safelist.RegionUS,
				Format: output.FormatJSON,
			},
			pingErr: errPing,
			stdout:  "[\n  \"1.2.3.4\"\n]\n",
			reports: []string{"start", "finish us 1"},
			warnMessages: []string{
				"reporting run start to healthchecks.io: test ping error",
				"reporting run result to healthchecks.io: test ping error",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			gatherer := &testGatherer{ips: testCase.ips}
			hioClient := &testHealthchecksIO{err: testCase.pingErr}
			logger := &testWarner{}
			stdout := bytes.NewBuffer(nil)

			err := printSafelist(context.Background(), gatherer, hioClient,
				stdout, testCase.settings, output.Settings{}, logger)

			require.NoError(t, err)
			assert.Equal(t, testCase.stdout, stdout.String())
			assert.Equal(t, []safelist.Region{testCase.settings.Region}, gatherer.regions)
			assert.Equal(t, testCase.reports, hioClient.reports)
			assert.Equal(t, testCase.warnMessages, logger.messages)
		})
	}
}

func Test_main_commands(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args       []string
		stdout     string
		errWrapped error
		errMessage string
	}{
		"version": {
			args:   []string{"pd-safelist", "version"},
			stdout: "v1.0.0\n",
		},
		"version_flag": {
			args:   []string{"pd-safelist", "--version"},
			stdout: "v1.0.0\n",
		},
		"unknown_command": {
			args:       []string{"pd-safelist", "gather"},
			errWrapped: ErrCommandUnknown,
			errMessage: "command is unknown: gather",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reader := reader.New(reader.Settings{})
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)
			logger := log.New(log.SetWriters(io.Discard))
			buildInfo := buildInformation{Version: "v1.0.0"}

			err := _main(context.Background(), reader, testCase.args,
				stdout, stderr, logger, buildInfo, time.Now, nil)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.stdout, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func Test_buildInformation_versionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo buildInformation
		version   string
	}{
		"release": {
			buildInfo: buildInformation{Version: "v1.2.0", Commit: "abcdef0123"},
			version:   "v1.2.0",
		},
		"latest_with_commit": {
			buildInfo: buildInformation{Version: "latest", Commit: "abcdef0123"},
			version:   "latest (abcdef0)",
		},
		"latest_short_commit": {
			buildInfo: buildInformation{Version: "latest", Commit: "abc"},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.version, testCase.buildInfo.versionString())
		})
	}
}

func Test_main_printsSafelist(t *testing.T) {
	t.Parallel()

	const page = "# Webhook IPs\n" +
		"## US Service Region\n" +
		"| 1.webhooks.pagerduty.com | 44.242.69.192 |\n" +
		"| 2.webhooks.pagerduty.com | 52.89.71.166 |\n" +
		"## EU Service Region\n" +
		"| 1.eu.webhooks.pagerduty.com | 3.73.130.224 |\n"

	testCases := map[string]struct {
		region string
		format string
		status int
		stdout string
	}{
		"all regions": {
			region: "all",
			status: http.StatusOK,
			stdout: "3.73.130.224\n44.242.69.192\n52.89.71.166\n",
		},
		"US region": {
			region: "us",
			status: http.StatusOK,
			stdout: "44.242.69.192\n52.89.71.166\n",
		},
		"EU region as JSON": {
			region: "eu",
			format: "json",
			status: http.StatusOK,
			stdout: "[\n  \"3.73.130.224\"\n]\n",
		},
		"documentation unavailable": {
			region: "all",
			status: http.StatusInternalServerError,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewTLSServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "/webhooks/11-Webhook-IPs.md", r.URL.Path)
					w.WriteHeader(testCase.status)
					_, _ = w.Write([]byte(page))
				}))
			t.Cleanup(server.Close)
			host := strings.TrimPrefix(server.URL, "https://")
			transport, ok := server.Client().Transport.(*http.Transport)
			require.True(t, ok)

			environ := []string{
				"PDIPGATHER_URL=" + host,
				"PDIPGATHER_ROUTE=/webhooks/11-Webhook-IPs.md",
				"WEBHOOK_US_HOST=" + host,
				"WEBHOOK_EU_HOST=" + host,
				"REGION=" + testCase.region,
				"OUTPUT_FORMAT=" + testCase.format,
			}
			reader := reader.New(reader.Settings{
				Sources: []reader.Source{env.New(env.Settings{Environ: environ})},
			})
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)
			logger := log.New(log.SetWriters(io.Discard))
			afterCutover := func() time.Time {
				return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
			}

			err := _main(context.Background(), reader, []string{"pd-safelist"},
				stdout, stderr, logger, buildInformation{Version: "v1.0.0"},
				afterCutover, transport)

			require.NoError(t, err)
			assert.Equal(t, testCase.stdout, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}
