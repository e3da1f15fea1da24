package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

func seedApplication(t *testing.T, repo applications.Repository, regNo string, status models.Status, adminMsg string) *models.Application {
	t.Helper()
	app := buildApplication(validForm(), regNo, "p.jpg", "s.jpg")
	app.Status = status
	app.AdminMessage = adminMsg
	stored, err := repo.Insert(context.Background(), app)
	require.NoError(t, err)
	return stored
}

func TestLookup_NotFound(t *testing.T) {
	svc := NewLookupService(applications.NewInMemory(), testMetrics())

	_, _, err := svc.Lookup(context.Background(), "MPC260000000")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLookup_NormalizesToken(t *testing.T) {
	repo := applications.NewInMemory()
	stored := seedApplication(t, repo, "MPC261234567", models.StatusPending, "")
	svc := NewLookupService(repo, testMetrics())

	got, msg, err := svc.Lookup(context.Background(), "  mpc261234567 \n")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, messagePending, msg)
}

func TestLookup_StatusMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   models.Status
		adminMsg string
		want     string
	}{
		{"pending default", models.StatusPending, "", messagePending},
		{"approved default", models.StatusApproved, "", messageApproved},
		{"rejected default", models.StatusRejected, "", messageRejected},
		{"unknown status falls back", models.Status("On Hold"), "", messageUnknown},
		{"admin message wins verbatim", models.StatusRejected, "Re-upload your caste certificate.", "Re-upload your caste certificate."},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := applications.NewInMemory()
			regNo := "MPC26123456" + string(rune('0'+i))
			seedApplication(t, repo, regNo, tt.status, tt.adminMsg)

			svc := NewLookupService(repo, testMetrics())
			_, msg, err := svc.Lookup(context.Background(), regNo)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}
