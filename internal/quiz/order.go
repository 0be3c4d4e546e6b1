package quiz

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LabelOrder controls how the pool is re-sorted when a label returns to it.
type LabelOrder int

const (
	// OrderCodePoint sorts by code point, so accented labels ("Côtes",
	// "Crâne") land after unaccented ones with the same prefix.
	OrderCodePoint LabelOrder = iota

	// OrderFrench sorts with French collation rules.
	OrderFrench
)

// ParseLabelOrder maps a config string to a LabelOrder. Unknown values
// fall back to OrderCodePoint.
func ParseLabelOrder(s string) LabelOrder {
	switch s {
	case "fr", "french", "locale":
		return OrderFrench
	default:
		return OrderCodePoint
	}
}

func (o LabelOrder) sort(labels []string) {
	switch o {
	case OrderFrench:
		collate.New(language.French).SortStrings(labels)
	default:
		slices.Sort(labels)
	}
}
