// Package output writes the safelist in the formats consumers expect.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/traefik/genconf/dynamic"
)

type Settings struct {
	// TraefikMiddleware is the name of the IP allow list
	// middleware in the Traefik dynamic configuration.
	TraefikMiddleware string
}

func Write(w io.Writer, format Format, ips []string, settings Settings) (err error) {
	switch format {
	case FormatLines:
		return writeLines(w, ips)
	case FormatJSON:
		if ips == nil {
			ips = []string{}
		}
		return writeJSON(w, ips)
	case FormatTraefik:
		return writeJSON(w, traefikConfiguration(ips, settings.TraefikMiddleware))
	default:
		return fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}
}

func writeLines(w io.Writer, ips []string) (err error) {
	for _, ip := range ips {
		_, err = io.WriteString(w, ip+"\n")
		if err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) (err error) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func traefikConfiguration(ips []string, middlewareName string) *dynamic.Configuration {
	if ips == nil {
		ips = []string{}
	}
	return &dynamic.Configuration{
		HTTP: &dynamic.HTTPConfiguration{
			Middlewares: map[string]*dynamic.Middleware{
				middlewareName: {
					IPWhiteList: &dynamic.IPWhiteList{SourceRange: ips},
				},
			},
		},
	}
}
