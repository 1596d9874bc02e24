package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Docs is the developer documentation page listing the safelist.
type Docs struct {
	Host string
	Path string
}

func (d *Docs) setDefaults() {
	d.Host = gosettings.DefaultComparable(d.Host, "raw.githubusercontent.com")
	d.Path = gosettings.DefaultComparable(d.Path,
		"/PagerDuty/developer-docs/main/docs/webhooks/11-Webhook-IPs.md")
}

var (
	ErrHostEmpty       = errors.New("host is empty")
	ErrHostHasScheme   = errors.New("host must not contain a scheme")
	ErrPathNotAbsolute = errors.New("path does not start with /")
)

func (d Docs) Validate() (err error) {
	err = validateHost(d.Host)
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}
	return validatePath(d.Path)
}

func validateHost(host string) (err error) {
	switch {
	case host == "":
		return ErrHostEmpty
	case strings.Contains(host, "://"):
		return fmt.Errorf("%w: %s", ErrHostHasScheme, host)
	}
	return nil
}

func validatePath(path string) (err error) {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, path)
	}
	return nil
}

func (d Docs) String() string {
	return d.toLinesNode().String()
}

func (d Docs) toLinesNode() *gotree.Node {
	return gotree.New("Documentation source: https://" + d.Host + d.Path)
}

func (d *Docs) read(r *reader.Reader) {
	d.Host = r.String("PDIPGATHER_URL")
	d.Path = r.String("PDIPGATHER_ROUTE", reader.ForceLowercase(false))
}
