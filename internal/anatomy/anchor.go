package anatomy

// Vec3 is a point in model space. Y is up, units are meters, the skeleton
// stands on the origin facing +Z.
type Vec3 struct {
	X, Y, Z float64
}

// Anchor is a fixed reference point on the skeleton model.
type Anchor struct {
	// ID is stable and unique within an anchor set.
	ID string

	// Label is the canonical display name shown to the player.
	Label string

	// Position is used by the viewport only. Scoring never reads it.
	Position Vec3
}

// Bone is a segment between two anchors, drawn by the placeholder model.
type Bone struct {
	From string
	To   string
}

// Labels returns the canonical labels of the given anchors, in anchor order.
func Labels(anchors []Anchor) []string {
	labels := make([]string, len(anchors))
	for i, a := range anchors {
		labels[i] = a.Label
	}
	return labels
}

// Find returns the anchor with the given ID.
func Find(anchors []Anchor, id string) (Anchor, bool) {
	for _, a := range anchors {
		if a.ID == id {
			return a, true
		}
	}
	return Anchor{}, false
}
