package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
	"golang.org/x/sync/singleflight"
)

type handlers struct {
	ctx      context.Context //nolint:containedctx
	gatherer Gatherer
	group    singleflight.Group
	logger   Logger
	// Defaults
	region safelist.Region
	format output.Format
	output output.Settings
}

func newHandler(ctx context.Context, settings Settings,
	gatherer Gatherer, logger Logger) http.Handler {
	handlers := &handlers{
		ctx:      ctx,
		gatherer: gatherer,
		logger:   logger,
		region:   settings.Region,
		format:   settings.Format,
		output:   settings.Output,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, middleware.Recoverer)

	rootURL := strings.TrimSuffix(settings.RootURL, "/")
	router.Get(rootURL+"/safelist", handlers.getSafelist)

	return router
}

func (h *handlers) getSafelist(w http.ResponseWriter, r *http.Request) {
	region := h.region
	if s := r.URL.Query().Get("region"); s != "" {
		var err error
		region, err = safelist.ParseRegion(s)
		if err != nil {
			badParameter(w, "region", err)
			return
		}
	}

	format := h.format
	if s := r.URL.Query().Get("format"); s != "" {
		var err error
		format, err = output.ParseFormat(s)
		if err != nil {
			badParameter(w, "format", err)
			return
		}
	}

	ips := h.gather(region)

	w.Header().Set("Content-Type", format.ContentType())
	err := output.Write(w, format, ips, h.output)
	if err != nil {
		h.logger.Error(err.Error())
	}
}

// gather shares a single gathering between the requests for the same
// region arriving while it runs. It uses the server context so a client
// going away does not cancel the gathering for the other clients.
func (h *handlers) gather(region safelist.Region) (ips []string) {
	result, _, shared := h.group.Do(region.String(), func() (any, error) {
		return h.gatherer.Safelist(h.ctx, region).Sorted(), nil
	})
	if shared {
		h.logger.Debug("shared safelist gathering for region " + region.String())
	}
	return result.([]string) //nolint:forcetypeassert
}
