package fetch

import (
	"net"
	"net/http"
	"time"
)

type ClientSettings struct {
	Timeout  time.Duration
	Resolver *net.Resolver
	Logger   DebugLogger
	// Transport is cloned as base transport of the client
	// and defaults to http.DefaultTransport.
	Transport *http.Transport
}

// NewClient returns an HTTP client closing its connection after each
// request, resolving host names with the resolver given and logging
// each exchange at the debug level. Redirects are not followed: the
// 3xx response is returned as is.
func NewClient(settings ClientSettings) *http.Client {
	dialer := &net.Dialer{
		Timeout:  settings.Timeout,
		Resolver: settings.Resolver,
	}

	transport := settings.Transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport) //nolint:forcetypeassert
	}
	transport = transport.Clone()
	transport.DialContext = dialer.DialContext
	transport.DisableKeepAlives = true

	client := &http.Client{
		Timeout:   settings.Timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	if settings.Logger != nil {
		client.Transport = &loggingRoundTripper{
			proxied: transport,
			logger:  settings.Logger,
		}
	}

	return client
}
