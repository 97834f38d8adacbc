package domain

// Horizon is one of the six fixed planning time-frames used to group goals.
// Horizons are static: they are never persisted as entities, only referenced
// by ID as grouping keys.
type Horizon struct {
	ID    string
	Label string
}

// Horizons is the canonical ordered set of planning horizons.
var Horizons = []Horizon{
	{ID: "h1", Label: "1 year"},
	{ID: "h3", Label: "3 years"},
	{ID: "h5", Label: "5 years"},
	{ID: "h10", Label: "10 years"},
	{ID: "h15", Label: "15 years"},
	{ID: "h20", Label: "20 years"},
}

// DefaultHorizonID is the horizon selected in a fresh document and the
// fallback when a persisted selection no longer names a valid horizon.
const DefaultHorizonID = "h1"

// ValidHorizonID reports whether id names one of the six fixed horizons.
func ValidHorizonID(id string) bool {
	for _, h := range Horizons {
		if h.ID == id {
			return true
		}
	}
	return false
}

// HorizonLabel returns the display label for a horizon ID, or "—" when the
// ID is not part of the fixed set (a week task may reference a horizon that
// an imported document never defined).
func HorizonLabel(id string) string {
	for _, h := range Horizons {
		if h.ID == id {
			return h.Label
		}
	}
	return "—"
}
