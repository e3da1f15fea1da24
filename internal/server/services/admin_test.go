package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

func newAdminService(repo applications.Repository, pub *capturePublisher) *AdminService {
	return NewAdminService(repo, pub, testLogger(), testMetrics())
}

func strPtr(s string) *string            { return &s }
func statusPtr(s models.Status) *models.Status { return &s }

func TestAdminList_StatsFromFetchedList(t *testing.T) {
	repo := applications.NewInMemory()
	seedApplication(t, repo, "MPC261111111", models.StatusPending, "")
	seedApplication(t, repo, "MPC262222222", models.StatusApproved, "")
	seedApplication(t, repo, "MPC263333333", models.StatusRejected, "")
	seedApplication(t, repo, "MPC264444444", models.Status("On Hold"), "")

	svc := newAdminService(repo, &capturePublisher{})
	apps, stats, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, apps, 4)
	assert.Equal(t, models.Stats{Total: 4, Pending: 1, Approved: 1, Rejected: 1}, stats)
}

func TestAdminUpdate_AppliesWhitelistedFieldsAndPublishes(t *testing.T) {
	repo := applications.NewInMemory()
	stored := seedApplication(t, repo, "MPC261111111", models.StatusPending, "")
	pub := &capturePublisher{}
	svc := newAdminService(repo, pub)

	err := svc.Update(context.Background(), stored.ID, &models.ApplicationUpdate{
		Status:       statusPtr(models.StatusApproved),
		AdminMessage: strPtr("Verified against originals."),
	})
	require.NoError(t, err)

	got, err := repo.FindByRegistrationNumber(context.Background(), "MPC261111111")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, "Verified against originals.", got.AdminMessage)

	// Untouched fields stay as stored.
	assert.Equal(t, stored.StudentName, got.StudentName)
	assert.Equal(t, stored.RegistrationNumber, got.RegistrationNumber)

	require.Len(t, pub.events, 1)
	assert.Equal(t, feed.OpUpdate, pub.events[0].Op)
	assert.Equal(t, stored.ID, pub.events[0].ID)
}

func TestAdminUpdate_MissingRecord(t *testing.T) {
	pub := &capturePublisher{}
	svc := newAdminService(applications.NewInMemory(), pub)

	err := svc.Update(context.Background(), "no-such-id", &models.ApplicationUpdate{
		Status: statusPtr(models.StatusApproved),
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, pub.events, "no event published on failure")
}

func TestAdminDelete_RemovesRecordFromListAndLookup(t *testing.T) {
	repo := applications.NewInMemory()
	stored := seedApplication(t, repo, "MPC261111111", models.StatusPending, "")
	pub := &capturePublisher{}
	svc := newAdminService(repo, pub)

	require.NoError(t, svc.Delete(context.Background(), stored.ID))

	apps, stats, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Equal(t, 0, stats.Total)

	lookup := NewLookupService(repo, testMetrics())
	_, _, err = lookup.Lookup(context.Background(), stored.RegistrationNumber)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.Len(t, pub.events, 1)
	assert.Equal(t, feed.OpDelete, pub.events[0].Op)
}

func TestAdminDelete_MissingRecord(t *testing.T) {
	svc := newAdminService(applications.NewInMemory(), &capturePublisher{})
	assert.ErrorIs(t, svc.Delete(context.Background(), "no-such-id"), common.ErrNotFound)
}
