package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/metrics"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

// Default per-status explanations shown when no admin message is set.
const (
	messagePending  = "Your documents are successfully indexed. Manual verification by the regional office is in progress. Kindly allow 48-72 business hours for the final update."
	messageApproved = "Your verification is successful. The digital hall ticket will be available for download 15 days prior to the examination date via this portal."
	messageRejected = "Inconsistencies detected in the uploaded documents. Please review your submission against your original certificates and contact the support desk."
	messageUnknown  = "Application status updated. Please contact the regional center for details."
)

// LookupService resolves a user-entered tracking token to the unique
// matching record.
type LookupService struct {
	repo    applications.Repository
	metrics *metrics.Metrics
}

func NewLookupService(repo applications.Repository, m *metrics.Metrics) *LookupService {
	return &LookupService{repo: repo, metrics: m}
}

// Lookup trims and upper-cases the token, then fetches by registration
// number. Zero matches yield common.ErrNotFound; a hit returns the record
// together with its display message.
func (s *LookupService) Lookup(ctx context.Context, token string) (*models.Application, string, error) {
	regNo := strings.ToUpper(strings.TrimSpace(token))

	app, err := s.repo.FindByRegistrationNumber(ctx, regNo)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.metrics.LookupsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, "", err
	}

	s.metrics.LookupsTotal.WithLabelValues("found").Inc()
	return app, StatusMessage(app), nil
}

// StatusMessage returns the admin-authored message verbatim when present,
// otherwise the default explanation for the record's status, with a
// generic fallback for values outside the known three.
func StatusMessage(app *models.Application) string {
	if app.AdminMessage != "" {
		return app.AdminMessage
	}
	switch app.Status {
	case models.StatusPending:
		return messagePending
	case models.StatusApproved:
		return messageApproved
	case models.StatusRejected:
		return messageRejected
	default:
		return messageUnknown
	}
}
