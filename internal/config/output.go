package config

import (
	"errors"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
)

type Output struct {
	Region            safelist.Region
	Format            output.Format
	TraefikMiddleware string
}

func (o *Output) setDefaults() {
	o.Region = gosettings.DefaultComparable(o.Region, safelist.RegionAll)
	o.Format = gosettings.DefaultComparable(o.Format, output.FormatLines)
	o.TraefikMiddleware = gosettings.DefaultComparable(o.TraefikMiddleware, "pagerduty-safelist")
}

var ErrTraefikMiddlewareEmpty = errors.New("Traefik middleware name is empty")

func (o Output) Validate() (err error) {
	_, err = safelist.ParseRegion(string(o.Region))
	if err != nil {
		return err
	}

	_, err = output.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}

	if o.Format == output.FormatTraefik && o.TraefikMiddleware == "" {
		return ErrTraefikMiddlewareEmpty
	}

	return nil
}

func (o Output) String() string {
	return o.toLinesNode().String()
}

func (o Output) toLinesNode() *gotree.Node {
	node := gotree.New("Output")
	node.Appendf("Region: %s", o.Region)
	node.Appendf("Format: %s", o.Format)
	if o.Format == output.FormatTraefik {
		node.Appendf("Traefik middleware: %s", o.TraefikMiddleware)
	}
	return node
}

func (o *Output) read(r *reader.Reader) (err error) {
	region := r.String("REGION")
	if region != "" {
		o.Region, err = safelist.ParseRegion(region)
		if err != nil {
			return err
		}
	}

	format := r.String("OUTPUT_FORMAT")
	if format != "" {
		o.Format, err = output.ParseFormat(format)
		if err != nil {
			return err
		}
	}

	o.TraefikMiddleware = r.String("TRAEFIK_MIDDLEWARE", reader.ForceLowercase(false))
	return nil
}
