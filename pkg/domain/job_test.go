package domain

import "testing"

func TestValidJobStatus(t *testing.T) {
	for _, s := range []string{JobStatusDraft, JobStatusPublished} {
		if !ValidJobStatus(s) {
			t.Errorf("ValidJobStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "archived", "Published"} {
		if ValidJobStatus(s) {
			t.Errorf("ValidJobStatus(%q) = true, want false", s)
		}
	}
}

func TestJobMatchesQuery(t *testing.T) {
	job := Job{Title: "Backend Engineer", Company: "Acme", Location: "Casablanca"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"engineer", true},
		{"ENGINEER", true},
		{"acme", true},
		{"casa", true},
		{"designer", false},
	}
	for _, tt := range tests {
		if got := job.MatchesQuery(tt.query); got != tt.want {
			t.Errorf("MatchesQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range ValidApplicationStatuses {
		if !ValidApplicationStatus(s) {
			t.Errorf("ValidApplicationStatus(%q) = false, want true", s)
		}
	}
	if ValidApplicationStatus("withdrawn") {
		t.Error("ValidApplicationStatus(\"withdrawn\") = true, want false")
	}
}
