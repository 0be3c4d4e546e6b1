package anatomy

import (
	"fmt"
	"strings"
)

// Validate checks the built-in skeleton set and its bones.
func Validate() error {
	return validateAnchors(skeleton, bones)
}

// validateAnchors checks that IDs and labels are unique and non-empty and
// that every bone references known anchors. The label pool relies on label
// uniqueness: a duplicate would make two anchors interchangeable.
func validateAnchors(anchors []Anchor, bones []Bone) error {
	var errs []string

	ids := make(map[string]bool, len(anchors))
	labels := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		if a.ID == "" {
			errs = append(errs, fmt.Sprintf("anchor with label %q has empty ID", a.Label))
		}
		if a.Label == "" {
			errs = append(errs, fmt.Sprintf("anchor %q has empty label", a.ID))
		}
		if ids[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate anchor ID: %q", a.ID))
		}
		if labels[a.Label] {
			errs = append(errs, fmt.Sprintf("duplicate anchor label: %q", a.Label))
		}
		ids[a.ID] = true
		labels[a.Label] = true
	}

	for _, b := range bones {
		for _, id := range []string{b.From, b.To} {
			if !ids[id] {
				errs = append(errs, fmt.Sprintf("bone %s-%s references unknown anchor %q", b.From, b.To, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("anchor validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
