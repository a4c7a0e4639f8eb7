package font

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Origin tags where a font entry came from.
type Origin string

const (
	OriginLocal  Origin = "Local"
	OriginGoogle Origin = "Google"
)

// Label returns the option group label used when listing fonts.
func (o Origin) Label() string {
	switch o {
	case OriginLocal:
		return "Local Fonts"
	case OriginGoogle:
		return "Google Fonts"
	default:
		return string(o)
	}
}

// List mirrors the GET /fonts response body.
type List struct {
	Local  []string `json:"local_fonts"`
	Google []string `json:"popular_google_fonts"`
}

// Entry is one selectable font family.
type Entry struct {
	Name   string `json:"name"`
	Origin Origin `json:"origin"`
}

// Group is an ordered run of entries sharing an origin.
type Group struct {
	Label   string  `json:"label"`
	Origin  Origin  `json:"origin"`
	Entries []Entry `json:"entries"`
}

// Merge combines both sequences of the list into one slice sorted by name
// using locale-aware collation. Local entries precede Google entries when
// names collate equal.
func Merge(list List) []Entry {
	entries := make([]Entry, 0, len(list.Local)+len(list.Google))
	for _, name := range list.Local {
		entries = append(entries, Entry{Name: name, Origin: OriginLocal})
	}
	for _, name := range list.Google {
		entries = append(entries, Entry{Name: name, Origin: OriginGoogle})
	}

	c := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Name, entries[j].Name) < 0
	})
	return entries
}

// Grouped splits merged entries into the Local and Google groups, keeping the
// sorted order inside each group. Both groups are always returned so callers
// can render empty sections consistently.
func Grouped(entries []Entry) []Group {
	local := Group{Label: OriginLocal.Label(), Origin: OriginLocal}
	google := Group{Label: OriginGoogle.Label(), Origin: OriginGoogle}
	for _, entry := range entries {
		if entry.Origin == OriginLocal {
			local.Entries = append(local.Entries, entry)
			continue
		}
		google.Entries = append(google.Entries, entry)
	}
	return []Group{local, google}
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Name
	}
	return out
}
