package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/logging"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/metrics"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/objstore"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

// SubmissionService turns a validated form plus two binary assets into one
// persisted application. Stages run strictly in sequence — duplicate check,
// photo upload, signature upload, insert — and the workflow aborts on the
// first failure. Uploads that happened before a later failure are not
// rolled back; keys are unique per attempt, so retries never collide.
type SubmissionService struct {
	repo    applications.Repository
	store   objstore.Store
	feed    feed.Publisher
	gen     *RegNumberGenerator
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewSubmissionService(
	repo applications.Repository,
	store objstore.Store,
	publisher feed.Publisher,
	gen *RegNumberGenerator,
	logger logging.Logger,
	m *metrics.Metrics,
) *SubmissionService {
	return &SubmissionService{
		repo:    repo,
		store:   store,
		feed:    publisher,
		gen:     gen,
		logger:  logger.With("module", "submission"),
		metrics: m,
		now:     time.Now,
	}
}

// Submit runs the full workflow and returns the stored record, including
// the store-assigned ID and CreatedAt, for immediate receipt display.
func (s *SubmissionService) Submit(ctx context.Context, form *models.SubmissionForm) (*models.Application, error) {
	if err := ValidateAndNormalize(form); err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	existing, err := s.repo.FindByAadhaar(ctx, form.Aadhaar)
	if err == nil {
		s.metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
		return nil, &DuplicateError{
			Aadhaar:            form.Aadhaar,
			RegistrationNumber: existing.RegistrationNumber,
		}
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, &StageError{Stage: StageDuplicateCheck, Err: err}
	}

	regNo := s.gen.Next()
	attempt := s.now().UnixMilli()

	photoURL, err := s.store.Put(ctx,
		fmt.Sprintf("uploads/%s_photo_%d.jpg", regNo, attempt),
		form.Photo, "image/jpeg")
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("upload_failed").Inc()
		return nil, &StageError{Stage: StageUploadPhoto, Err: err}
	}

	sigURL, err := s.store.Put(ctx,
		fmt.Sprintf("uploads/%s_sig_%d.jpg", regNo, attempt),
		form.Signature, "image/jpeg")
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("upload_failed").Inc()
		return nil, &StageError{Stage: StageUploadSignature, Err: err}
	}

	app := buildApplication(form, regNo, photoURL, sigURL)

	inserted, err := s.repo.Insert(ctx, app)
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("insert_failed").Inc()
		return nil, &StageError{Stage: StageFinalize, Err: err}
	}

	// A lost notification only delays the dashboard until its next
	// refresh, so a publish failure must not fail a persisted submission.
	if err := s.feed.Publish(ctx, feed.Event{
		Op:                 feed.OpInsert,
		ID:                 inserted.ID,
		RegistrationNumber: inserted.RegistrationNumber,
		At:                 s.now(),
	}); err != nil {
		s.logger.Warn(ctx, "publishing insert event failed", "error", err)
	}

	s.metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info(ctx, "application submitted", "regno", inserted.RegistrationNumber)

	return inserted, nil
}

func buildApplication(form *models.SubmissionForm, regNo, photoURL, sigURL string) *models.Application {
	return &models.Application{
		RegistrationNumber: regNo,

		StudentName:           form.StudentName,
		FatherName:            form.FatherName,
		MotherName:            form.MotherName,
		DOB:                   form.DOB,
		Aadhaar:               form.Aadhaar,
		MobileNumber:          form.MobileNumber,
		AlternateMobileNumber: form.AlternateMobileNumber,
		Apaar:                 form.Apaar,
		RationCard:            form.RationCard,

		Category:            form.Category,
		SubCaste:            form.SubCaste,
		IncomeCertificate:   form.IncomeCertificate,
		CasteEWSCertificate: form.CasteEWSCertificate,

		TenthHallTicket:     form.TenthHallTicket,
		PracticalHallTicket: form.PracticalHallTicket,
		JEEMainsNo:          form.JEEMainsNo,

		Street:      form.Street,
		VillageCity: form.VillageCity,
		District:    form.District,
		State:       form.State,
		Pincode:     form.Pincode,
		Nation:      form.Nation,

		School6Name:   form.School6Name,
		School6Place:  form.School6Place,
		School7Name:   form.School7Name,
		School7Place:  form.School7Place,
		School8Name:   form.School8Name,
		School8Place:  form.School8Place,
		School9Name:   form.School9Name,
		School9Place:  form.School9Place,
		School10Name:  form.School10Name,
		School10Place: form.School10Place,

		PhotoURL:     photoURL,
		SignatureURL: sigURL,

		Status: models.StatusPending,
	}
}
