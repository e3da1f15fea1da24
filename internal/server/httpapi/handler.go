// Package httpapi is the HTTP boundary of the portal: routing, multipart
// and JSON decoding, admin token issuance and verification, and mapping of
// domain errors to status codes. Business rules live in the services.
package httpapi

import (
	"context"
	"time"

	"github.com/mpcportal/admissions/internal/logging"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/services"
)

// HealthCheck probes one dependency. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

// Handler holds the services the routes delegate to.
type Handler struct {
	submissions *services.SubmissionService
	lookup      *services.LookupService
	admin       *services.AdminService
	feed        feed.Subscriber
	logger      logging.Logger

	jwtSecret      []byte
	tokenValidity  time.Duration
	passphraseHash string

	health map[string]HealthCheck
}

func NewHandler(
	submissions *services.SubmissionService,
	lookup *services.LookupService,
	admin *services.AdminService,
	subscriber feed.Subscriber,
	logger logging.Logger,
	jwtSecret []byte,
	tokenValidity time.Duration,
	passphraseHash string,
	health map[string]HealthCheck,
) *Handler {
	return &Handler{
		submissions:    submissions,
		lookup:         lookup,
		admin:          admin,
		feed:           subscriber,
		logger:         logger.With("module", "httpapi"),
		jwtSecret:      jwtSecret,
		tokenValidity:  tokenValidity,
		passphraseHash: passphraseHash,
		health:         health,
	}
}
