package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/domain"
)

// resolveID matches user input against entity ids: exact match first, then
// unique prefix. Inputs usually come from the truncated ids shown in lists.
func resolveID(ids []string, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("id is required")
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolveGoalID(app *App, horizonID, input string) (string, error) {
	var ids []string
	for _, g := range app.Goals.List(horizonID) {
		ids = append(ids, g.ID)
	}
	return resolveID(ids, input)
}

func resolveTaskID(app *App, input string) (string, error) {
	var ids []string
	for _, t := range app.Week.Tasks() {
		ids = append(ids, t.ID)
	}
	return resolveID(ids, input)
}

func resolveTodayID(app *App, input string) (string, error) {
	var ids []string
	for _, it := range app.Today.Items() {
		ids = append(ids, it.ID)
	}
	return resolveID(ids, input)
}

func resolveNoteID(app *App, input string) (string, error) {
	var ids []string
	for _, n := range app.Notes.List() {
		ids = append(ids, n.ID)
	}
	return resolveID(ids, input)
}

// parseDay accepts a weekday as an index ("0".."6", Mon=0) or a name ("mon",
// "Tuesday").
func parseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return int(s[0] - '0'), nil
	}
	lower := strings.ToLower(s)
	for i, name := range domain.DayNames {
		if strings.HasPrefix(lower, strings.ToLower(name)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q (use 0-6 with Monday=0, or a day name)", s)
}
