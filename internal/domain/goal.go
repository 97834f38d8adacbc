package domain

import "time"

// Goal is a long-term objective owned by exactly one horizon bucket.
type Goal struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Desc       string     `json:"desc"`
	TargetDate *time.Time `json:"targetDate"`
	Done       bool       `json:"done"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
