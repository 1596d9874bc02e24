package safelist

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a PagerDuty service region.
type Region string

const (
	RegionAll Region = "all"
	RegionUS  Region = "us"
	RegionEU  Region = "eu"
)

func (r Region) String() string { return string(r) }

var ErrRegionUnknown = errors.New("region is unknown")

func ParseRegion(s string) (region Region, err error) {
	switch Region(strings.ToLower(s)) {
	case RegionAll:
		return RegionAll, nil
	case RegionUS:
		return RegionUS, nil
	case RegionEU:
		return RegionEU, nil
	default:
		return "", fmt.Errorf("%w: %q must be one of %s, %s or %s",
			ErrRegionUnknown, s, RegionAll, RegionUS, RegionEU)
	}
}

// covers returns true if a source published for r has
// to be queried to build the safelist of the given region.
func (r Region) covers(region Region) bool {
	return r == RegionAll || region == RegionAll || r == region
}

// sectionTitle returns the title of the documentation page section
// listing the addresses of the region.
func (r Region) sectionTitle() string {
	return strings.ToUpper(string(r)) + " Service Region"
}
