package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/pd-safelist/internal/resolver"
)

func readResolver(r *reader.Reader, settings *resolver.Settings) (err error) {
	address := r.String("RESOLVER_ADDRESS")
	if address != "" {
		settings.Address, err = resolver.ParseAddress(address)
		if err != nil {
			return fmt.Errorf("environment variable RESOLVER_ADDRESS: %w", err)
		}
	}

	settings.Timeout, err = r.Duration("RESOLVER_TIMEOUT")
	return err
}
