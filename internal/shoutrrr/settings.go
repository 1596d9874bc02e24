package shoutrrr

import "github.com/qdm12/gosettings"

type Settings struct {
	Addresses    []string
	DefaultTitle string
	Logger       Erroer
}

type Erroer interface {
	Error(s string)
}

func (s *Settings) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "PagerDuty safelist")
	if s.Logger == nil {
		s.Logger = noopLogger{}
	}
}

type noopLogger struct{}

func (noopLogger) Error(_ string) {}
