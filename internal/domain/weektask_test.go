package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndexFor_MondayBased(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, DayIndexFor(monday.AddDate(0, 0, i)))
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
	}{
		{"monday itself", time.Date(2026, 3, 2, 23, 59, 0, 0, time.Local)},
		{"midweek", time.Date(2026, 3, 4, 8, 30, 0, 0, time.Local)},
		{"sunday", time.Date(2026, 3, 8, 0, 1, 0, 0, time.Local)},
	}

	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, MondayOf(tc.day).Equal(want))
		})
	}
}

func TestTasksForDay_IncompleteFirstStable(t *testing.T) {
	tasks := []*WeekTask{
		{ID: "a", DayIndex: 2, Done: true},
		{ID: "b", DayIndex: 2},
		{ID: "c", DayIndex: 3},
		{ID: "d", DayIndex: 2, Done: true},
		{ID: "e", DayIndex: 2},
	}

	day := TasksForDay(tasks, 2)
	require.Len(t, day, 4)

	var ids []string
	for _, task := range day {
		ids = append(ids, task.ID)
	}
	// Incomplete before complete, insertion order preserved inside each group.
	assert.Equal(t, []string{"b", "e", "a", "d"}, ids)
}

func TestTasksForDay_SharesUnderlyingRecords(t *testing.T) {
	tasks := []*WeekTask{{ID: "a", DayIndex: 0}}

	day := TasksForDay(tasks, 0)
	require.Len(t, day, 1)

	day[0].Done = true
	assert.True(t, tasks[0].Done, "day bucket must alias the flat sequence")
}

func TestValidDayIndex(t *testing.T) {
	assert.True(t, ValidDayIndex(0))
	assert.True(t, ValidDayIndex(6))
	assert.False(t, ValidDayIndex(-1))
	assert.False(t, ValidDayIndex(7))
}
