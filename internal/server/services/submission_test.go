package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

func newSubmissionService(t *testing.T, repo applications.Repository, store *fakeStore, pub *capturePublisher) *SubmissionService {
	t.Helper()
	gen := NewRegNumberGenerator("MPC26")
	return NewSubmissionService(repo, store, pub, gen, testLogger(), testMetrics())
}

func TestSubmit_HappyPath(t *testing.T) {
	repo := &countingRepo{Repository: applications.NewInMemory()}
	store := &fakeStore{}
	pub := &capturePublisher{}
	svc := newSubmissionService(t, repo, store, pub)

	got, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	// One duplicate check, two uploads, one insert.
	assert.Equal(t, 1, repo.aadhaarChecks)
	assert.Len(t, store.keys, 2)
	assert.Equal(t, 1, repo.inserts)

	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, strings.HasPrefix(got.RegistrationNumber, "MPC26"))
	assert.Len(t, got.RegistrationNumber, 12)

	// Normalization happened before persistence.
	assert.Equal(t, "RAVI KUMAR", got.StudentName)

	// Upload keys are namespaced by registration number, photo first.
	assert.Contains(t, store.keys[0], got.RegistrationNumber+"_photo_")
	assert.Contains(t, store.keys[1], got.RegistrationNumber+"_sig_")
	assert.Equal(t, "https://cdn.test/"+store.keys[0], got.PhotoURL)
	assert.Equal(t, "https://cdn.test/"+store.keys[1], got.SignatureURL)

	// Insert event published for dashboard refresh.
	require.Len(t, pub.events, 1)
	assert.Equal(t, feed.OpInsert, pub.events[0].Op)
	assert.Equal(t, got.ID, pub.events[0].ID)
}

func TestSubmit_DuplicateAadhaar(t *testing.T) {
	repo := &countingRepo{Repository: applications.NewInMemory()}
	store := &fakeStore{}
	svc := newSubmissionService(t, repo, store, &capturePublisher{})

	first, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	// Second submission reuses the same Aadhaar.
	store2 := &fakeStore{}
	repo.aadhaarChecks, repo.inserts = 0, 0
	svc2 := newSubmissionService(t, repo, store2, &capturePublisher{})

	_, err = svc2.Submit(context.Background(), validForm())
	require.Error(t, err)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "123456789012", dup.Aadhaar)
	assert.Equal(t, first.RegistrationNumber, dup.RegistrationNumber)
	assert.Contains(t, err.Error(), first.RegistrationNumber)

	// Zero upload calls and zero insert calls after the duplicate check.
	assert.Equal(t, 1, repo.aadhaarChecks)
	assert.Empty(t, store2.keys)
	assert.Equal(t, 0, repo.inserts)
}

func TestSubmit_ValidationRejectsBeforeAnyGatewayCall(t *testing.T) {
	repo := &countingRepo{Repository: applications.NewInMemory()}
	store := &fakeStore{}
	svc := newSubmissionService(t, repo, store, &capturePublisher{})

	form := validForm()
	form.Aadhaar = "123"

	_, err := svc.Submit(context.Background(), form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	assert.Equal(t, 0, repo.aadhaarChecks)
	assert.Empty(t, store.keys)
	assert.Equal(t, 0, repo.inserts)
}

func TestSubmit_SignatureUploadFailureLeavesNoRecord(t *testing.T) {
	repo := &countingRepo{Repository: applications.NewInMemory()}
	store := &fakeStore{failOn: "_sig_"}
	svc := newSubmissionService(t, repo, store, &capturePublisher{})

	_, err := svc.Submit(context.Background(), validForm())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageUploadSignature, stageErr.Stage)
	assert.Contains(t, err.Error(), "uploading signature")

	// The photo went up, the record did not.
	assert.Len(t, store.keys, 1)
	assert.Equal(t, 0, repo.inserts)

	// The tracking surface cannot reach any partial record.
	_, lookupErr := repo.FindByAadhaar(context.Background(), "123456789012")
	assert.Error(t, lookupErr)
}

func TestSubmit_PhotoUploadFailure(t *testing.T) {
	repo := &countingRepo{Repository: applications.NewInMemory()}
	store := &fakeStore{failOn: "_photo_"}
	svc := newSubmissionService(t, repo, store, &capturePublisher{})

	_, err := svc.Submit(context.Background(), validForm())
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageUploadPhoto, stageErr.Stage)
	assert.Empty(t, store.keys)
	assert.Equal(t, 0, repo.inserts)
}

func TestSubmit_InsertFailureSurfacesFinalizeStage(t *testing.T) {
	mem := applications.NewInMemory()

	// Seed a record whose registration number the pinned generator will
	// reproduce, so the insert hits the uniqueness violation.
	seeded := buildApplication(validForm(), "MPC260001100", "p", "s")
	seeded.Aadhaar = "999999999999"
	_, err := mem.Insert(context.Background(), seeded)
	require.NoError(t, err)

	repo := &countingRepo{Repository: mem}
	svc := newSubmissionService(t, repo, &fakeStore{}, &capturePublisher{})
	svc.gen.now = func() time.Time { return time.UnixMilli(1) }
	svc.gen.intn = func(n int) int { return 0 }

	_, err = svc.Submit(context.Background(), validForm())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageFinalize, stageErr.Stage)
}
