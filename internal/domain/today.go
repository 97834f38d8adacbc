package domain

import "time"

// TodayItem is one entry of the daily checklist. Items persist indefinitely;
// only their Done flags are cleared by the daily rollover.
type TodayItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodayList is the daily checklist bucket. Date stamps the calendar day of
// the last rollover.
type TodayList struct {
	Date  string       `json:"date"`
	Items []*TodayItem `json:"items"`
}

// dateKeyLayout encodes a calendar day, locale-independent, in the device's
// local timezone.
const dateKeyLayout = "2006-01-02"

// DateKey returns the calendar-day stamp for t, used to detect rollover.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}
