// Package directory holds the static country calling-code table backing the
// phone prefix selector. The table is immutable after process start.
package directory

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

type CountryCode struct {
	CallingCode string `json:"calling_code"`
	Alpha2      string `json:"alpha2"`
	CountryName string `json:"country_name"`
	FlagGlyph   string `json:"flag_glyph"`
}

var ordered []CountryCode

func init() {
	ordered = make([]CountryCode, len(countries))
	copy(ordered, countries)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CountryName < ordered[j].CountryName
	})
}

// ListAll returns every entry, alphabetical by country name.
func ListAll() []CountryCode {
	out := make([]CountryCode, len(ordered))
	copy(out, ordered)
	return out
}

// Filter returns entries whose country name or ISO alpha-2 code contains
// the query case-insensitively, or whose calling code contains it as a
// substring. An empty query returns everything.
func Filter(query string) []CountryCode {
	query = strings.TrimSpace(query)
	if query == "" {
		return ListAll()
	}

	lowered := strings.ToLower(query)
	return lo.Filter(ordered, func(c CountryCode, _ int) bool {
		return strings.Contains(strings.ToLower(c.CountryName), lowered) ||
			strings.Contains(strings.ToLower(c.Alpha2), lowered) ||
			strings.Contains(c.CallingCode, query)
	})
}

// FindByName looks an entry up by its unique country name.
func FindByName(name string) (CountryCode, bool) {
	name = strings.TrimSpace(name)
	return lo.Find(ordered, func(c CountryCode) bool {
		return strings.EqualFold(c.CountryName, name)
	})
}
