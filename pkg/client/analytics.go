package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// Analytics returns aggregate counts plus six-month trends. Admin only.
// The snapshot is read-only; callers replace it wholesale on each fetch.
func (c *Client) Analytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/analytics", nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.Analytics: %w", err)
	}
	snap, err := normalizeObject[domain.AnalyticsSnapshot](raw)
	if err != nil {
		return nil, fmt.Errorf("client.Analytics: %w", err)
	}
	return snap, nil
}
