package safelist

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Logger,Notifier

type Fetcher interface {
	Fetch(ctx context.Context, host, path string) (body string, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
}

type Notifier interface {
	Notify(message string)
}
