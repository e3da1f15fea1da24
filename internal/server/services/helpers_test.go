package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mpcportal/admissions/internal/logging"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/metrics"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// countingRepo wraps a Repository and counts gateway calls so tests can
// assert which stages ran.
type countingRepo struct {
	applications.Repository
	aadhaarChecks int
	inserts       int
}

func (r *countingRepo) FindByAadhaar(ctx context.Context, aadhaar string) (*models.Application, error) {
	r.aadhaarChecks++
	return r.Repository.FindByAadhaar(ctx, aadhaar)
}

func (r *countingRepo) Insert(ctx context.Context, app *models.Application) (*models.Application, error) {
	r.inserts++
	return r.Repository.Insert(ctx, app)
}

// fakeStore records uploads and can be told to fail on keys containing a
// substring.
type fakeStore struct {
	keys   []string
	failOn string
}

func (s *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.failOn != "" && strings.Contains(key, s.failOn) {
		return "", errors.New("storage rejected upload")
	}
	s.keys = append(s.keys, key)
	return "https://cdn.test/" + key, nil
}

// capturePublisher collects published change events.
type capturePublisher struct {
	events []feed.Event
}

func (p *capturePublisher) Publish(ctx context.Context, ev feed.Event) error {
	p.events = append(p.events, ev)
	return nil
}

func validForm() *models.SubmissionForm {
	return &models.SubmissionForm{
		StudentName:           "Ravi Kumar",
		FatherName:            "Suresh Kumar",
		MotherName:            "Lakshmi Devi",
		DOB:                   "2008-06-15",
		Aadhaar:               "123456789012",
		MobileNumber:          "9876543210",
		AlternateMobileNumber: "9123456780",
		Apaar:                 "APAAR-001",
		RationCard:            "RC-445",
		Category:              "BC-B",
		SubCaste:              "Kapu",
		IncomeCertificate:     "IC-2026-01",
		CasteEWSCertificate:   "CC-2026-01",
		TenthHallTicket:       "HT-10-889",
		PracticalHallTicket:   "PT-889",
		JEEMainsNo:            "",
		Street:                "12 Temple Street",
		VillageCity:           "Rajahmundry",
		District:              "East Godavari",
		State:                 "Andhra Pradesh",
		Pincode:               "533101",
		Nation:                "India",
		School6Name:           "ZP High School",
		School6Place:          "Kadiyam",
		School7Name:           "ZP High School",
		School7Place:          "Kadiyam",
		School8Name:           "ZP High School",
		School8Place:          "Kadiyam",
		School9Name:           "Municipal High School",
		School9Place:          "Rajahmundry",
		School10Name:          "Municipal High School",
		School10Place:         "Rajahmundry",
		Photo:                 []byte("photo-bytes"),
		Signature:             []byte("signature-bytes"),
	}
}
