package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/pd-safelist/internal/fetch/mock_fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewClient(t *testing.T) {
	t.Parallel()

	t.Run("without logger", func(t *testing.T) {
		t.Parallel()

		client := NewClient(ClientSettings{Timeout: 3 * time.Second})

		assert.Equal(t, 3*time.Second, client.Timeout)
		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.DisableKeepAlives)
		assert.NotSame(t, http.DefaultTransport, transport)
		assert.NotNil(t, client.CheckRedirect)
	})

	t.Run("with logger", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		logger := mock_fetch.NewMockDebugLogger(ctrl)

		client := NewClient(ClientSettings{
			Timeout: time.Second,
			Logger:  logger,
		})

		roundTripper, ok := client.Transport.(*loggingRoundTripper)
		require.True(t, ok)
		transport, ok := roundTripper.proxied.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.DisableKeepAlives)
	})
}

func Test_loggingRoundTripper(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Region", "us")
			_, _ = w.Write([]byte("[\n  \"10.0.0.1\",\n  \"10.0.0.2\"\n]"))
		}))
	t.Cleanup(server.Close)

	logger := mock_fetch.NewMockDebugLogger(ctrl)
	first := logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
		DoAndReturn(func(s string) {
			assert.Regexp(t, `^GET http://127\.0\.0\.1:[0-9]{1,5}/webhook_ips$`, s)
		})
	logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
		DoAndReturn(func(s string) {
			assert.Regexp(t, `^200 OK \| headers: .*X-Region: us.* \| `+
				`body: \[ "10\.0\.0\.1", "10\.0\.0\.2" \]$`, s)
		}).After(first)

	client := &http.Client{
		Transport: &loggingRoundTripper{
			proxied: http.DefaultTransport,
			logger:  logger,
		},
	}

	request, err := http.NewRequestWithContext(context.Background(),
		http.MethodGet, server.URL+"/webhook_ips", nil)
	require.NoError(t, err)

	response, err := client.Do(request)
	require.NoError(t, err)

	b, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())
	assert.Equal(t, "[\n  \"10.0.0.1\",\n  \"10.0.0.2\"\n]", string(b))
}

func Test_toSingleLine(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s    string
		line string
	}{
		"empty": {},
		"single line": {
			s:    "1.2.3.4",
			line: "1.2.3.4",
		},
		"markdown": {
			s:    "# Webhook IPs\r\n\r\n| 1.2.3.4 |    |\n",
			line: "# Webhook IPs | 1.2.3.4 | |",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			line := toSingleLine(testCase.s)

			assert.Equal(t, testCase.line, line)
		})
	}
}

func Test_headerToString(t *testing.T) {
	t.Parallel()

	header := http.Header{
		"Key2": []string{"value 3"},
		"Key1": []string{"value 1", "value 2"},
	}

	s := headerToString(header)

	assert.Equal(t, "Key1: value 1,value 2; Key2: value 3", s)
	assert.False(t, strings.HasSuffix(s, "; "))
}
