package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// ApplyRequest is the payload for applying to a job.
type ApplyRequest struct {
	JobID       int64  `json:"jobId"`
	CVLink      string `json:"cvLink"`
	CoverLetter string `json:"coverLetter"`
}

// Apply submits a job application and returns the created record.
func (c *Client) Apply(ctx context.Context, req ApplyRequest) (*domain.Application, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodPost, "/api/applications", req, true)
	if err != nil {
		return nil, fmt.Errorf("client.Apply: %w", err)
	}
	app, err := normalizeObject[domain.Application](raw)
	if err != nil {
		return nil, fmt.Errorf("client.Apply: %w", err)
	}
	return app, nil
}

// ApplyLegacy submits an application through the older per-job route. Kept
// because some deployments have not migrated to POST /api/applications.
func (c *Client) ApplyLegacy(ctx context.Context, jobID int64, req ApplyRequest) (*domain.Application, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodPost, "/api/jobs/"+strconv.FormatInt(jobID, 10)+"/apply", req, true)
	if err != nil {
		return nil, fmt.Errorf("client.ApplyLegacy: %w", err)
	}
	app, err := normalizeObject[domain.Application](raw)
	if err != nil {
		return nil, fmt.Errorf("client.ApplyLegacy: %w", err)
	}
	return app, nil
}

// MyApplications returns the current user's applications.
// Errors are masked to an empty list under MaskListErrors.
func (c *Client) MyApplications(ctx context.Context) ([]domain.Application, error) {
	return c.applicationList(ctx, "/api/applications/me", "client.MyApplications")
}

// AllApplications returns every application. Admin only.
// Errors are masked to an empty list under MaskListErrors.
func (c *Client) AllApplications(ctx context.Context) ([]domain.Application, error) {
	return c.applicationList(ctx, "/api/applications/all", "client.AllApplications")
}

// ApplicationsForJob returns the applications submitted to one job.
// Errors are masked to an empty list under MaskListErrors.
func (c *Client) ApplicationsForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return c.applicationList(ctx, "/api/applications/job/"+strconv.FormatInt(jobID, 10), "client.ApplicationsForJob")
}

// AdminJobsApplications returns jobs grouped with their applicant lists.
// Admin only. Errors are masked to an empty list under MaskListErrors.
func (c *Client) AdminJobsApplications(ctx context.Context) ([]domain.JobApplicants, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/applications/admin/jobs-applications", nil, true)
	if err != nil {
		if masked := c.maskListError(err); masked == nil {
			return []domain.JobApplicants{}, nil
		}
		return nil, fmt.Errorf("client.AdminJobsApplications: %w", err)
	}
	return normalizeList[domain.JobApplicants](raw), nil
}

func (c *Client) applicationList(ctx context.Context, path, op string) ([]domain.Application, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		if masked := c.maskListError(err); masked == nil {
			return []domain.Application{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return normalizeList[domain.Application](raw), nil
}

// maskListError decides whether a list-fetch error is swallowed. Session
// expiry always propagates: masking it would leave a dead session in place
// with no way for the caller to notice.
func (c *Client) maskListError(err error) error {
	if c.listPolicy == MaskListErrors && !IsSessionExpired(err) {
		return nil
	}
	return err
}
