package output

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatLines   Format = "lines"
	FormatJSON    Format = "json"
	FormatTraefik Format = "traefik"
)

var ErrFormatUnknown = errors.New("output format is unknown")

func ParseFormat(s string) (format Format, err error) {
	switch Format(strings.ToLower(s)) {
	case FormatLines:
		return FormatLines, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTraefik:
		return FormatTraefik, nil
	default:
		return "", fmt.Errorf("%w: %q must be one of %s, %s or %s",
			ErrFormatUnknown, s, FormatLines, FormatJSON, FormatTraefik)
	}
}

// ContentType returns the MIME type of documents written with the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON, FormatTraefik:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
