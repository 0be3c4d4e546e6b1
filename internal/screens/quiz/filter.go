package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips diacritics so "cote" matches "Côtes".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// filterLabels keeps the labels containing query, ignoring case and accents.
func filterLabels(labels []string, query string) []string {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return labels
	}
	var out []string
	for _, l := range labels {
		if strings.Contains(fold(l), q) {
			out = append(out, l)
		}
	}
	return out
}
