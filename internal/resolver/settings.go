package resolver

import (
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

// Settings configures the DNS resolver reaching the safelist sources.
// The zero Address means the Go default resolver is used.
type Settings struct {
	Address netip.AddrPort
	Timeout time.Duration
}

func (s *Settings) SetDefaults() {
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

var (
	ErrAddressNotValid    = errors.New("address is not valid")
	ErrAddressUnspecified = errors.New("address is unspecified")
	ErrAddressPortZero    = errors.New("address port is zero")
)

// ParseAddress parses an IP address with an optional port,
// which defaults to 53.
func ParseAddress(s string) (address netip.AddrPort, err error) {
	address, err = netip.ParseAddrPort(s)
	if err == nil {
		return address, nil
	}

	ip, ipErr := netip.ParseAddr(s)
	if ipErr != nil {
		return address, fmt.Errorf("%w: %s", ErrAddressNotValid, s)
	}
	const dnsPort = 53
	return netip.AddrPortFrom(ip, dnsPort), nil
}

func (s Settings) Validate() (err error) {
	if s.Address.IsValid() {
		switch {
		case s.Address.Addr().IsUnspecified():
			return fmt.Errorf("%w: %s", ErrAddressUnspecified, s.Address)
		case s.Address.Port() == 0:
			return fmt.Errorf("%w: %s", ErrAddressPortZero, s.Address)
		}
	}

	const minTimeout, maxTimeout = 10 * time.Millisecond, time.Minute
	err = validate.NumberBetween(s.Timeout, minTimeout, maxTimeout)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	if !s.Address.IsValid() {
		return gotree.New("DNS resolver: Go default")
	}

	node := gotree.New("DNS resolver")
	node.Appendf("Address: %s", s.Address)
	node.Appendf("Timeout: %s", s.Timeout)
	return node
}
