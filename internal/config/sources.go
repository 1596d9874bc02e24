package config

import "github.com/qdm12/pd-safelist/internal/safelist"

// ToSafelistSettings returns the sources to gather the safelist from,
// the documentation page first.
func (c Config) ToSafelistSettings() safelist.Settings {
	return safelist.Settings{
		Sources: []safelist.Source{
			{
				Name:   "developer documentation",
				Region: safelist.RegionAll,
				Kind:   safelist.KindMarkdown,
				Host:   c.Docs.Host,
				Path:   c.Docs.Path,
			},
			{
				Name:       "US webhook IPs",
				Region:     safelist.RegionUS,
				Kind:       safelist.KindJSON,
				Host:       c.Webhooks.USHost,
				Path:       c.Webhooks.Path,
				Deprecated: true,
			},
			{
				Name:       "EU webhook IPs",
				Region:     safelist.RegionEU,
				Kind:       safelist.KindJSON,
				Host:       c.Webhooks.EUHost,
				Path:       c.Webhooks.Path,
				Deprecated: true,
			},
		},
		Cutover: c.Webhooks.Cutover,
	}
}
