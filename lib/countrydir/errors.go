package countrydir

import (
	"fmt"

	"github.com/antzucaro/matchr"
)

// UnknownCountryError reports input that did not exactly match any known
// country name. Suggestion is the closest known name when one is similar
// enough to be worth mentioning, it is advisory only.
type UnknownCountryError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCountryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown country %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown country %q", e.Name)
}

const suggestionThreshold = 0.85

func (d *Directory) closest(name string) string {
	best := ""
	bestSimilarity := suggestionThreshold
	for _, c := range d.ordered {
		similarity := matchr.JaroWinkler(name, c.Country, false)
		if similarity > bestSimilarity {
			best = c.Country
			bestSimilarity = similarity
		}
	}
	return best
}
