package domain

import (
	"strings"
	"time"
)

// Job statuses.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
)

// Job represents a job posting.
type Job struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Status      string     `json:"status"` // "draft" or "published"
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   int64      `json:"created_by,omitempty"`
}

// ValidJobStatus returns true if the given status is a known job status.
func ValidJobStatus(status string) bool {
	return status == JobStatusDraft || status == JobStatusPublished
}

// MatchesQuery reports whether the job matches a free-text query by
// case-insensitive substring on title, company or location. Used by the
// in-memory fallback filter when the backend list was fetched unfiltered.
func (j Job) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q) ||
		strings.Contains(strings.ToLower(j.Location), q)
}
