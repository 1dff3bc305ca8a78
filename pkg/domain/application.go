package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// ValidApplicationStatuses lists the allowed application statuses in
// review order.
var ValidApplicationStatuses = []string{
	ApplicationPending,
	ApplicationReviewed,
	ApplicationAccepted,
	ApplicationRejected,
}

// Application represents one user's application to one job.
// UserName/UserEmail and JobTitle/Company are denormalized by the backend
// so list views render without extra lookups.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       int64     `json:"jobId"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
	JobTitle    string    `json:"jobTitle,omitempty"`
	Company     string    `json:"company,omitempty"`
	Status      string    `json:"status"` // pending, reviewed, accepted, rejected
	AppliedDate time.Time `json:"appliedDate"`
	CVLink      string    `json:"cvLink,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
}

var validApplicationStatusSet = func() map[string]bool {
	m := make(map[string]bool, len(ValidApplicationStatuses))
	for _, s := range ValidApplicationStatuses {
		m[s] = true
	}
	return m
}()

// ValidApplicationStatus returns true if the given status is a known
// application status.
func ValidApplicationStatus(status string) bool {
	return validApplicationStatusSet[status]
}

// JobApplicants groups a job with the applications it received. The admin
// jobs-applications endpoint returns a list of these.
type JobApplicants struct {
	Job          Job           `json:"job"`
	Applications []Application `json:"applications"`
}
