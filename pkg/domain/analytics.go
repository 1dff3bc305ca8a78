package domain

// MonthCount is one month's total in a trend series. Month is a label like
// "2026-03" or "Mar"; the backend decides the format.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// AnalyticsSnapshot holds the aggregate counts and six-month trends shown on
// the admin dashboard. It is read-only on the client and replaced wholesale
// on every fetch.
type AnalyticsSnapshot struct {
	Jobs                    int          `json:"jobs"`
	Applications            int          `json:"applications"`
	Users                   int          `json:"users"`
	JobsLast6Months         []MonthCount `json:"jobsLast6Months"`
	ApplicationsLast6Months []MonthCount `json:"applicationsLast6Months"`
}
