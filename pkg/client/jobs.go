package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// JobRequest is the payload for creating or updating a job.
type JobRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      string     `json:"status,omitempty"`
}

// JobFilters narrows a published-jobs listing. Filtering happens on the
// backend; empty fields are omitted from the query.
type JobFilters struct {
	Search   string
	Location string
}

// ListJobs fetches the unfiltered job list. Admin only.
func (c *Client) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/jobs?"+params.Encode(), nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.ListJobs: %w", err)
	}
	return normalizeList[domain.Job](raw), nil
}

// ListPublishedJobs fetches published jobs with pagination and optional
// search/location filters. Public.
func (c *Client) ListPublishedJobs(ctx context.Context, page, pageSize int, filters JobFilters) ([]domain.Job, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("status", domain.JobStatusPublished)
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Location != "" {
		params.Set("location", filters.Location)
	}

	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/jobs/published?"+params.Encode(), nil, false)
	if err != nil {
		return nil, fmt.Errorf("client.ListPublishedJobs: %w", err)
	}
	return normalizeList[domain.Job](raw), nil
}

// GetJob fetches a single job by ID. Public.
func (c *Client) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/jobs/"+strconv.FormatInt(id, 10), nil, false)
	if err != nil {
		return nil, fmt.Errorf("client.GetJob: %w", err)
	}
	job, err := normalizeObject[domain.Job](raw)
	if err != nil {
		return nil, fmt.Errorf("client.GetJob: %w", err)
	}
	return job, nil
}

// ListLocations returns the distinct locations jobs have been posted in.
func (c *Client) ListLocations(ctx context.Context) ([]string, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/jobs/locations", nil, false)
	if err != nil {
		return nil, fmt.Errorf("client.ListLocations: %w", err)
	}
	return normalizeList[string](raw), nil
}

// CreateJob creates a new job posting.
func (c *Client) CreateJob(ctx context.Context, req JobRequest) (*domain.Job, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodPost, "/api/jobs", req, true)
	if err != nil {
		return nil, fmt.Errorf("client.CreateJob: %w", err)
	}
	job, err := normalizeObject[domain.Job](raw)
	if err != nil {
		return nil, fmt.Errorf("client.CreateJob: %w", err)
	}
	return job, nil
}

// UpdateJob replaces a job's fields. Last write wins; there is no merge.
func (c *Client) UpdateJob(ctx context.Context, id int64, req JobRequest) (*domain.Job, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodPut, "/api/jobs/"+strconv.FormatInt(id, 10), req, true)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateJob: %w", err)
	}
	job, err := normalizeObject[domain.Job](raw)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateJob: %w", err)
	}
	return job, nil
}

// DeleteJob deletes a job by ID.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/jobs/"+strconv.FormatInt(id, 10), nil, nil, true); err != nil {
		return fmt.Errorf("client.DeleteJob: %w", err)
	}
	return nil
}
