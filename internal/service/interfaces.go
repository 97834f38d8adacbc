package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
)

var (
	// ErrEmptyTitle is returned when a trimmed required title is empty.
	// The operation aborts with no mutation; the UI surfaces a warning.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrInvalidDay is returned for a weekday index outside [0,6].
	ErrInvalidDay = errors.New("day index must be between 0 (Mon) and 6 (Sun)")

	// ErrInvalidHorizon is returned when an id does not name a fixed horizon.
	ErrInvalidHorizon = errors.New("unknown horizon id")

	// ErrNotFound is returned when no entity with the given id exists in its
	// owning collection.
	ErrNotFound = errors.New("not found")
)

// Reads are answered from the in-memory document and cannot fail; every
// mutation persists synchronously before returning, so a nil error means the
// change is durable.

type GoalService interface {
	List(horizonID string) []*domain.Goal
	Get(horizonID, id string) (*domain.Goal, error)
	Add(ctx context.Context, horizonID, title, desc string, targetDate *time.Time) (*domain.Goal, error)
	Edit(ctx context.Context, horizonID, id, title, desc string, targetDate *time.Time) error
	ToggleDone(ctx context.Context, horizonID, id string) error
	Delete(ctx context.Context, horizonID, id string) error
	SelectedHorizon() domain.Horizon
	SelectHorizon(ctx context.Context, horizonID string) error
}

type WeekService interface {
	Tasks() []*domain.WeekTask
	TasksForDay(dayIndex int) []*domain.WeekTask
	Get(id string) (*domain.WeekTask, error)
	Add(ctx context.Context, title, notes string, dayIndex int, horizonID string) (*domain.WeekTask, error)
	Edit(ctx context.Context, id, title, notes string, dayIndex int, horizonID string) error
	ToggleDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TodayService interface {
	// EnsureRollover compares the stored rollover date with the current
	// calendar day and, when they differ, clears every item's done flag and
	// persists. Reports whether a rollover happened; a second call within
	// the same calendar day is a no-op.
	EnsureRollover(ctx context.Context) (bool, error)
	Items() []*domain.TodayItem
	// TasksDueToday derives the read-only-but-actionable sub-list of week
	// tasks whose day index equals today's weekday.
	TasksDueToday() []*domain.WeekTask
	Add(ctx context.Context, title string) (*domain.TodayItem, error)
	Edit(ctx context.Context, id, title string) error
	ToggleDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	List() []*domain.Note
	Get(id string) (*domain.Note, error)
	Add(ctx context.Context, title, body string) (*domain.Note, error)
	Edit(ctx context.Context, id, title, body string) error
	Delete(ctx context.Context, id string) error
}

type DataService interface {
	// Export writes the full document as indented JSON to the fixed
	// filename inside dir and returns the written path.
	Export(ctx context.Context, dir string) (string, error)
	// Import reads path, parses it as a JSON object, and replaces the
	// document wholesale using the same defaulting merge as load.
	Import(ctx context.Context, path string) error
	// Reset clears persisted storage and reinitializes to defaults.
	Reset(ctx context.Context) error
	LastSaved() time.Time
}
