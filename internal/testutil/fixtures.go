package testutil

import (
	"time"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/google/uuid"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalDone() GoalOption {
	return func(g *domain.Goal) {
		g.Done = true
	}
}

func WithTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.TargetDate = &d
	}
}

// NewTestGoal creates a goal with sensible defaults for tests.
func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WeekTask options
type WeekTaskOption func(*domain.WeekTask)

func WithDay(dayIndex int) WeekTaskOption {
	return func(t *domain.WeekTask) {
		t.DayIndex = dayIndex
	}
}

func WithHorizon(horizonID string) WeekTaskOption {
	return func(t *domain.WeekTask) {
		t.HorizonID = horizonID
	}
}

func WithTaskDone() WeekTaskOption {
	return func(t *domain.WeekTask) {
		t.Done = true
	}
}

// NewTestWeekTask creates a week task with sensible defaults for tests.
func NewTestWeekTask(title string, opts ...WeekTaskOption) *domain.WeekTask {
	now := time.Now()
	task := &domain.WeekTask{
		ID:        uuid.New().String(),
		Title:     title,
		HorizonID: domain.DefaultHorizonID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// NewTestTodayItem creates a daily checklist item for tests.
func NewTestTodayItem(title string, done bool) *domain.TodayItem {
	return &domain.TodayItem{
		ID:        uuid.New().String(),
		Title:     title,
		Done:      done,
		CreatedAt: time.Now(),
	}
}

// NewTestNote creates a note for tests.
func NewTestNote(title, body string) *domain.Note {
	now := time.Now()
	return &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
