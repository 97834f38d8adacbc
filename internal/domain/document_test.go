package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_AllHorizonBucketsExist(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	doc := NewDocument(now)

	require.Len(t, doc.GoalsByHorizon, len(Horizons))
	for _, h := range Horizons {
		bucket, ok := doc.GoalsByHorizon[h.ID]
		assert.True(t, ok, "bucket %s should exist", h.ID)
		assert.Empty(t, bucket)
	}
	assert.Equal(t, DocumentVersion, doc.Version)
	assert.Equal(t, DefaultHorizonID, doc.SelectedHorizonID)
	assert.True(t, ValidHorizonID(doc.SelectedHorizonID))
	assert.Equal(t, "2026-03-14", doc.Today.Date)
	assert.Empty(t, doc.WeekTasks)
	assert.Empty(t, doc.Today.Items)
	assert.Empty(t, doc.Notes)
}

func TestNormalize_BackfillsMissingBuckets(t *testing.T) {
	doc := &Document{
		Version:           DocumentVersion,
		SelectedHorizonID: "h5",
		GoalsByHorizon: map[string][]*Goal{
			"h1": {{ID: "g1", Title: "Run a marathon"}},
		},
	}

	doc.Normalize()

	for _, h := range Horizons {
		assert.NotNil(t, doc.GoalsByHorizon[h.ID], "bucket %s should be backfilled", h.ID)
	}
	require.Len(t, doc.GoalsByHorizon["h1"], 1, "existing bucket contents survive")
	assert.Equal(t, "h5", doc.SelectedHorizonID, "valid selection is untouched")
	assert.NotNil(t, doc.WeekTasks)
	assert.NotNil(t, doc.Today.Items)
	assert.NotNil(t, doc.Notes)
}

func TestNormalize_ResetsInvalidSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected string
	}{
		{"empty", ""},
		{"unknown id", "h42"},
		{"label instead of id", "1 year"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := &Document{Version: DocumentVersion, SelectedHorizonID: tc.selected}
			doc.Normalize()
			assert.Equal(t, DefaultHorizonID, doc.SelectedHorizonID)
		})
	}
}

func TestHorizonLabel(t *testing.T) {
	assert.Equal(t, "1 year", HorizonLabel("h1"))
	assert.Equal(t, "20 years", HorizonLabel("h20"))
	assert.Equal(t, "—", HorizonLabel("bogus"))
}
