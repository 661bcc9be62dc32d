package entity

import "time"

// CategoryCount is one slice of the per-category breakdown.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// AuthorStats summarizes one author's activity.
type AuthorStats struct {
	TotalPosts    int             `json:"totalPosts"`
	ByCategory    []CategoryCount `json:"byCategory"`
	LastPostTitle string          `json:"lastPostTitle,omitempty"`
	LastPostedAt  *time.Time      `json:"lastPostedAt,omitempty"`
}
