package answer

import (
	"strings"

	"github.com/vzahanych/weather-answer/internal/locale"
)

var tidy = strings.NewReplacer(" .", ".", " :", ":", " ,", ",", "..", ".")

// normalize collapses whitespace, drops spaces before punctuation, collapses
// doubled periods and capitalizes the first letter.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for {
		next := tidy.Replace(s)
		if next == s {
			break
		}
		s = next
	}
	return locale.Capitalize(strings.TrimSpace(s))
}
