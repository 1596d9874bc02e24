package config

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Health struct {
	HealthchecksioBaseURL string
	HealthchecksioUUID    *string
}

func (h *Health) setDefaults() {
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(h.HealthchecksioBaseURL,
		"https://hc-ping.com")
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
}

func (h Health) Validate() (err error) {
	_, err = url.Parse(h.HealthchecksioBaseURL)
	if err != nil {
		return fmt.Errorf("healthchecks.io base URL: %w", err)
	}
	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	if *h.HealthchecksioUUID == "" {
		return gotree.New("Healthchecks.io: disabled")
	}
	node := gotree.New("Healthchecks.io")
	node.Appendf("Base URL: %s", h.HealthchecksioBaseURL)
	node.Appendf("UUID: %s", *h.HealthchecksioUUID)
	return node
}

func (h *Health) read(r *reader.Reader) {
	h.HealthchecksioBaseURL = r.String("HEALTHCHECKSIO_BASE_URL",
		reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.Get("HEALTHCHECKSIO_UUID")
}
