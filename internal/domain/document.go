package domain

import "time"

// DocumentVersion distinguishes a valid persisted document from an absent or
// corrupt one. There is no multi-version migration chain beyond this check.
const DocumentVersion = 1

// Document is the single persisted object holding all user data. It is owned
// exclusively by the store: replaced wholesale on import/reset, mutated in
// place otherwise.
type Document struct {
	Version           int                `json:"version"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	SelectedHorizonID string             `json:"selectedHorizonId"`
	GoalsByHorizon    map[string][]*Goal `json:"goalsByHorizon"`
	WeekTasks         []*WeekTask        `json:"weekTasks"`
	Today             TodayList          `json:"today"`
	Notes             []*Note            `json:"notes"`
}

// NewDocument returns a fresh default document. Every fixed horizon gets an
// empty goal bucket so the bucket invariant holds from the start.
func NewDocument(now time.Time) *Document {
	buckets := make(map[string][]*Goal, len(Horizons))
	for _, h := range Horizons {
		buckets[h.ID] = []*Goal{}
	}
	return &Document{
		Version:           DocumentVersion,
		UpdatedAt:         now,
		SelectedHorizonID: DefaultHorizonID,
		GoalsByHorizon:    buckets,
		WeekTasks:         []*WeekTask{},
		Today: TodayList{
			Date:  DateKey(now),
			Items: []*TodayItem{},
		},
		Notes: []*Note{},
	}
}

// Normalize restores the structural invariants a persisted or imported
// document may have lost: every fixed horizon has a (possibly empty) bucket,
// and SelectedHorizonID names a valid horizon.
func (d *Document) Normalize() {
	if d.GoalsByHorizon == nil {
		d.GoalsByHorizon = make(map[string][]*Goal, len(Horizons))
	}
	for _, h := range Horizons {
		if d.GoalsByHorizon[h.ID] == nil {
			d.GoalsByHorizon[h.ID] = []*Goal{}
		}
	}
	if !ValidHorizonID(d.SelectedHorizonID) {
		d.SelectedHorizonID = DefaultHorizonID
	}
	if d.WeekTasks == nil {
		d.WeekTasks = []*WeekTask{}
	}
	if d.Today.Items == nil {
		d.Today.Items = []*TodayItem{}
	}
	if d.Notes == nil {
		d.Notes = []*Note{}
	}
}
