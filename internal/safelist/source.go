package safelist

import (
	"errors"
	"fmt"

	"github.com/qdm12/pd-safelist/internal/extract"
)

type Kind string

const (
	// KindMarkdown is a text document where IPv4 addresses
	// are found by their dotted-quad shape.
	KindMarkdown Kind = "markdown"
	// KindJSON is a JSON array of IP address strings.
	KindJSON Kind = "json"
)

type Source struct {
	Name   string
	Region Region
	Kind   Kind
	Host   string
	Path   string
	// Deprecated sources are no longer queried once
	// the gatherer cutover time is reached.
	Deprecated bool
}

func (s Source) String() string {
	return s.Name + " (https://" + s.Host + s.Path + ")"
}

var ErrRegionSectionNotFound = errors.New("region section not found")

// extract returns the IP addresses of the body for the region queried.
// A markdown source covering all regions is narrowed down to the
// section of the region queried.
func (s Source) extract(body string, region Region) (ips []string, err error) {
	switch s.Kind {
	case KindMarkdown:
		if s.Region == RegionAll && region != RegionAll {
			title := region.sectionTitle()
			section, ok := extract.MarkdownSection(body, title)
			if !ok {
				return nil, fmt.Errorf("%w: no heading containing %q",
					ErrRegionSectionNotFound, title)
			}
			body = section
		}
		return extract.IPv4Tokens(body), nil
	case KindJSON:
		return extract.JSONStrings(body)
	default:
		panic(fmt.Sprintf("source kind %q not implemented", s.Kind))
	}
}
