// Package resolver creates the DNS resolver used to reach the
// safelist sources.
package resolver

import (
	"context"
	"net"
)

// New returns the Go default resolver if no address is set, and
// otherwise a resolver sending its queries over UDP to the address.
// The settings must be defaulted and validated beforehand.
func New(settings Settings) (resolver *net.Resolver) {
	if !settings.Address.IsValid() {
		return net.DefaultResolver
	}

	address := settings.Address.String()
	dialer := net.Dialer{Timeout: settings.Timeout}
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, "udp", address)
		},
	}
}
