package services

import (
	"context"
	"time"

	"github.com/mpcportal/admissions/internal/logging"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/metrics"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

// AdminService backs the staff dashboard: listing with summary counts,
// whitelisted edits, and deletion. Callers are expected to be
// authenticated already; no credential check lives here.
type AdminService struct {
	repo    applications.Repository
	feed    feed.Publisher
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewAdminService(
	repo applications.Repository,
	publisher feed.Publisher,
	logger logging.Logger,
	m *metrics.Metrics,
) *AdminService {
	return &AdminService{
		repo:    repo,
		feed:    publisher,
		logger:  logger.With("module", "admin"),
		metrics: m,
		now:     time.Now,
	}
}

// List fetches every record ordered by creation time descending and
// derives the dashboard counts from the fetched list. Search and filtering
// stay client-side over this list.
func (s *AdminService) List(ctx context.Context) ([]*models.Application, models.Stats, error) {
	apps, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, models.Stats{}, err
	}
	return apps, models.CountStats(apps), nil
}

// Update applies a whitelisted mutation to one record. The payload type
// cannot express immutable columns, so nothing outside the whitelist is
// ever transmitted.
func (s *AdminService) Update(ctx context.Context, id string, upd *models.ApplicationUpdate) error {
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return err
	}

	if err := s.feed.Publish(ctx, feed.Event{Op: feed.OpUpdate, ID: id, At: s.now()}); err != nil {
		s.logger.Warn(ctx, "publishing update event failed", "error", err)
	}
	s.metrics.AdminActionsTotal.WithLabelValues("update").Inc()
	s.logger.Info(ctx, "application updated", "id", id)
	return nil
}

// Delete removes one record permanently. There is no soft delete and no
// undo; stored assets are left behind (accepted operational debt).
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.feed.Publish(ctx, feed.Event{Op: feed.OpDelete, ID: id, At: s.now()}); err != nil {
		s.logger.Warn(ctx, "publishing delete event failed", "error", err)
	}
	s.metrics.AdminActionsTotal.WithLabelValues("delete").Inc()
	s.logger.Info(ctx, "application deleted", "id", id)
	return nil
}
