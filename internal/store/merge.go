package store

import (
	"encoding/json"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
)

// overlay mirrors the document's top-level shape with optional fields, so a
// persisted or imported blob can be distinguished field-by-field from an
// absent one. Unknown top-level keys are dropped by the decode; missing keys
// stay nil and are backfilled from defaults.
type overlay struct {
	Version           *int                      `json:"version"`
	SelectedHorizonID *string                   `json:"selectedHorizonId"`
	GoalsByHorizon    map[string][]*domain.Goal `json:"goalsByHorizon"`
	WeekTasks         []*domain.WeekTask        `json:"weekTasks"`
	Today             *domain.TodayList         `json:"today"`
	Notes             []*domain.Note            `json:"notes"`
}

func parseOverlay(body []byte) (overlay, error) {
	var o overlay
	if err := json.Unmarshal(body, &o); err != nil {
		return overlay{}, err
	}
	return o, nil
}

// mergeOntoDefaults overlays parsed fields onto a fresh default document.
// The merge is shallow per top-level key, except goalsByHorizon which merges
// key-by-key: buckets present in the parsed document win, buckets missing
// from it are filled from defaults. Buckets under ids outside the fixed
// horizon set are carried along untouched.
func mergeOntoDefaults(parsed overlay, now time.Time) *domain.Document {
	doc := domain.NewDocument(now)

	if parsed.SelectedHorizonID != nil {
		doc.SelectedHorizonID = *parsed.SelectedHorizonID
	}
	for id, bucket := range parsed.GoalsByHorizon {
		doc.GoalsByHorizon[id] = bucket
	}
	if parsed.WeekTasks != nil {
		doc.WeekTasks = parsed.WeekTasks
	}
	if parsed.Today != nil {
		doc.Today = *parsed.Today
	}
	if parsed.Notes != nil {
		doc.Notes = parsed.Notes
	}

	doc.Normalize()
	return doc
}
