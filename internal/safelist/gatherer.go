// Package safelist gathers the IP addresses PagerDuty sends its
// webhooks from, merging all the sources publishing them.
package safelist

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type Settings struct {
	Sources []Source
	// Cutover is the time from which deprecated sources are skipped.
	// The zero time never skips them.
	Cutover time.Time
}

type Gatherer struct {
	sources  []Source
	cutover  time.Time
	fetcher  Fetcher
	logger   Logger
	notifier Notifier
	timeNow  func() time.Time

	failingMutex sync.Mutex
	failing      map[Region]bool
}

func New(settings Settings, fetcher Fetcher, logger Logger,
	notifier Notifier, timeNow func() time.Time) *Gatherer {
	return &Gatherer{
		sources:  settings.Sources,
		cutover:  settings.Cutover,
		fetcher:  fetcher,
		logger:   logger,
		notifier: notifier,
		timeNow:  timeNow,
		failing:  make(map[Region]bool),
	}
}

// All returns the safelist of all regions.
func (g *Gatherer) All(ctx context.Context) (safelist Set) {
	return g.Safelist(ctx, RegionAll)
}

// Safelist queries each source covering the region, one after the
// other, and returns the union of their IP addresses. A source failing
// contributes no address and does not stop the gathering.
func (g *Gatherer) Safelist(ctx context.Context, region Region) (safelist Set) {
	safelist = make(Set)

	attempted, failed := 0, 0
	for _, source := range g.sources {
		if !source.Region.covers(region) {
			continue
		}

		if g.pastCutover(source) {
			g.logger.Debug("skipping " + source.String() +
				": deprecated since " + g.cutover.Format(time.RFC3339))
			continue
		}

		attempted++
		ips, ok := g.gather(ctx, source, region)
		if !ok {
			failed++
			continue
		}
		safelist.Add(ips...)
	}

	if attempted > 0 {
		g.notifyChange(region, attempted, failed == attempted)
	}

	return safelist
}

// notifyChange notifies when all the sources of a region start failing
// and when they stop all failing. Repeated gatherings with the same
// outcome for the region do not notify again.
func (g *Gatherer) notifyChange(region Region, attempted int, allFailed bool) {
	g.failingMutex.Lock()
	wasFailing := g.failing[region]
	g.failing[region] = allFailed
	g.failingMutex.Unlock()

	switch {
	case allFailed && !wasFailing:
		g.notifier.Notify("all " + strconv.Itoa(attempted) +
			" safelist sources failed for region " + region.String())
	case !allFailed && wasFailing:
		g.notifier.Notify("safelist sources recovered for region " + region.String())
	}
}

func (g *Gatherer) pastCutover(source Source) bool {
	if !source.Deprecated || g.cutover.IsZero() {
		return false
	}
	return !g.timeNow().Before(g.cutover)
}

func (g *Gatherer) gather(ctx context.Context, source Source, region Region) (
	ips []string, ok bool) {
	body, err := g.fetcher.Fetch(ctx, source.Host, source.Path)
	if err != nil {
		g.logger.Warn("fetching " + source.String() + ": " + err.Error())
		return nil, false
	}

	ips, err = source.extract(body, region)
	if err != nil {
		g.logger.Warn("extracting IP addresses from " + source.String() + ": " + err.Error())
		return nil, false
	}

	g.logger.Info(source.Name + ": found " + strconv.Itoa(len(ips)) + " IP address(es)")
	return ips, true
}
