package server

import (
	"context"

	"github.com/qdm12/pd-safelist/internal/safelist"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Gatherer,Logger

type Gatherer interface {
	Safelist(ctx context.Context, region safelist.Region) (ips safelist.Set)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
