package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Webhooks are the regional JSON lists of webhook IP addresses,
// no longer queried from the cutover time.
type Webhooks struct {
	USHost  string
	EUHost  string
	Path    string
	Cutover time.Time
}

func (w *Webhooks) setDefaults() {
	w.USHost = gosettings.DefaultComparable(w.USHost, "app.pagerduty.com")
	w.EUHost = gosettings.DefaultComparable(w.EUHost, "app.eu.pagerduty.com")
	w.Path = gosettings.DefaultComparable(w.Path, "/webhook_ips")
	defaultCutover := time.Date(2022, time.May, 5, 0, 0, 0, 0, time.UTC)
	w.Cutover = gosettings.DefaultComparable(w.Cutover, defaultCutover)
}

func (w Webhooks) Validate() (err error) {
	err = validateHost(w.USHost)
	if err != nil {
		return fmt.Errorf("US host: %w", err)
	}

	err = validateHost(w.EUHost)
	if err != nil {
		return fmt.Errorf("EU host: %w", err)
	}

	return validatePath(w.Path)
}

func (w Webhooks) String() string {
	return w.toLinesNode().String()
}

func (w Webhooks) toLinesNode() *gotree.Node {
	node := gotree.New("Webhook IP list sources")
	node.Appendf("US: https://%s%s", w.USHost, w.Path)
	node.Appendf("EU: https://%s%s", w.EUHost, w.Path)
	node.Appendf("Skipped from: %s", w.Cutover.Format(time.RFC3339))
	return node
}

func (w *Webhooks) read(r *reader.Reader) (err error) {
	w.USHost = r.String("WEBHOOK_US_HOST")
	w.EUHost = r.String("WEBHOOK_EU_HOST")
	w.Path = r.String("WEBHOOK_PATH", reader.ForceLowercase(false))

	cutover := r.Get("WEBHOOK_CUTOVER", reader.ForceLowercase(false))
	if cutover != nil {
		w.Cutover, err = time.Parse(time.RFC3339, *cutover)
		if err != nil {
			return fmt.Errorf("parsing cutover time: %w", err)
		}
	}

	return nil
}
