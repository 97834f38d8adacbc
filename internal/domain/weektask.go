package domain

import (
	"sort"
	"time"
)

// WeekTask is a task planned for one weekday of the recurring week. Tasks
// live in a single flat ordered sequence; day grouping is computed at render
// time by filtering on DayIndex. HorizonID is a reference, not ownership.
type WeekTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	DayIndex  int       `json:"dayIndex"`
	HorizonID string    `json:"horizonId"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayNames are the weekday labels indexed by DayIndex (Monday = 0).
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ValidDayIndex reports whether d is a weekday index in [0,6].
func ValidDayIndex(d int) bool {
	return d >= 0 && d <= 6
}

// DayIndexFor returns the Monday-based weekday index of t.
func DayIndexFor(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MondayOf returns midnight of the Monday starting the week containing t,
// in t's location.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -DayIndexFor(day))
}

// TasksForDay selects the tasks of a single day bucket, incomplete tasks
// first, insertion order preserved within each completion group. The same
// ordering backs both the Week view day buckets and the Today-derived
// sub-list, so the two surfaces can never disagree.
func TasksForDay(tasks []*WeekTask, dayIndex int) []*WeekTask {
	var day []*WeekTask
	for _, t := range tasks {
		if t.DayIndex == dayIndex {
			day = append(day, t)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return !day[i].Done && day[j].Done
	})
	return day
}
