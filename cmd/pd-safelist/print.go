package main

import (
	"context"
	"fmt"
	"io"

	"github.com/qdm12/pd-safelist/internal/config"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
)

type Gatherer interface {
	Safelist(ctx context.Context, region safelist.Region) (ips safelist.Set)
}

type HealthchecksIOClient interface {
	Start(ctx context.Context) (err error)
	Finish(ctx context.Context, region string, ipsCount int) (err error)
}

type Warner interface {
	Warn(message string)
}

// printSafelist writes the safelist of the configured region to w.
// An empty safelist is not an error and is only reported as a
// failure to healthchecks.io.
func printSafelist(ctx context.Context, gatherer Gatherer,
	hioClient HealthchecksIOClient, w io.Writer, settings config.Output,
	outputSettings output.Settings, logger Warner) (err error) {
	err = hioClient.Start(ctx)
	if err != nil {
		logger.Warn("reporting run start to healthchecks.io: " + err.Error())
	}

	ips := gatherer.Safelist(ctx, settings.Region).Sorted()
	if len(ips) == 0 {
		logger.Warn("no IP address found for region " + settings.Region.String())
	}

	err = hioClient.Finish(ctx, settings.Region.String(), len(ips))
	if err != nil {
		logger.Warn("reporting run result to healthchecks.io: " + err.Error())
	}

	err = output.Write(w, settings.Format, ips, outputSettings)
	if err != nil {
		return fmt.Errorf("writing safelist: %w", err)
	}
	return nil
}
