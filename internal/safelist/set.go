package safelist

import "sort"

// Set is a set of IP address tokens.
type Set map[string]struct{}

func NewSet(ips ...string) Set {
	set := make(Set, len(ips))
	set.Add(ips...)
	return set
}

func (s Set) Add(ips ...string) {
	for _, ip := range ips {
		s[ip] = struct{}{}
	}
}

// Union adds all the tokens of other to s.
func (s Set) Union(other Set) {
	for ip := range other {
		s[ip] = struct{}{}
	}
}

func (s Set) Has(ip string) (ok bool) {
	_, ok = s[ip]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the tokens sorted lexicographically.
func (s Set) Sorted() (ips []string) {
	ips = make([]string, 0, len(s))
	for ip := range s {
		ips = append(ips, ip)
	}
	sort.Strings(ips)
	return ips
}
