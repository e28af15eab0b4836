package badges

import (
	"context"
	"testing"

	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBadgeRepository struct {
	badges map[string][]models.Badge
}

func (f *fakeBadgeRepository) Insert(ctx context.Context, badge *models.Badge) (string, error) {
	f.badges[badge.PatientID] = append(f.badges[badge.PatientID], *badge)
	return "badge-1", nil
}

func (f *fakeBadgeRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Badge, error) {
	return f.badges[patientID], nil
}

type fakeSubmissionRepository struct {
	counts map[string]int64
}

func (f *fakeSubmissionRepository) Insert(ctx context.Context, submission *models.Submission) (string, error) {
	return "", nil
}

func (f *fakeSubmissionRepository) FindByID(ctx context.Context, submissionID string) (*models.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	return f.counts[patientID], nil
}

type fakeNotificationService struct {
	sent []string
}

func (f *fakeNotificationService) Notify(ctx context.Context, recipientID, kind, message string) error {
	f.sent = append(f.sent, kind)
	return nil
}

func codes(badges []models.Badge) []string {
	out := make([]string, 0, len(badges))
	for _, badge := range badges {
		out = append(out, badge.Code)
	}
	return out
}

func TestCheckAndAwardBadges(t *testing.T) {
	ctx := context.Background()

	newFixture := func(submissionCount int64) (*badgeService, *fakeBadgeRepository, *fakeNotificationService) {
		badgeRepo := &fakeBadgeRepository{badges: map[string][]models.Badge{}}
		submissionRepo := &fakeSubmissionRepository{counts: map[string]int64{"patient-1": submissionCount}}
		notifications := &fakeNotificationService{}
		service := &badgeService{
			BadgeRepository:      badgeRepo,
			SubmissionRepository: submissionRepo,
			NotificationService:  notifications,
			Log:                  zap.NewNop(),
		}
		return service, badgeRepo, notifications
	}

	t.Run("no submissions awards nothing", func(t *testing.T) {
		service, badgeRepo, _ := newFixture(0)
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))
		assert.Empty(t, badgeRepo.badges["patient-1"])
	})

	t.Run("first submission awards the first badge", func(t *testing.T) {
		service, badgeRepo, notifications := newFixture(1)
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))
		assert.Equal(t, []string{constvars.BadgeFirstSubmission}, codes(badgeRepo.badges["patient-1"]))
		assert.Equal(t, []string{constvars.NotificationKindBadgeAwarded}, notifications.sent)
	})

	t.Run("a backlog awards every badge due", func(t *testing.T) {
		service, badgeRepo, notifications := newFixture(10)
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))
		assert.Equal(t, []string{
			constvars.BadgeFirstSubmission,
			constvars.BadgeFiveSubmissions,
			constvars.BadgeTenSubmissions,
		}, codes(badgeRepo.badges["patient-1"]))
		assert.Len(t, notifications.sent, 3)
	})

	t.Run("re-running awards nothing new", func(t *testing.T) {
		service, badgeRepo, notifications := newFixture(5)
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))

		assert.Equal(t, []string{
			constvars.BadgeFirstSubmission,
			constvars.BadgeFiveSubmissions,
		}, codes(badgeRepo.badges["patient-1"]))
		assert.Len(t, notifications.sent, 2)
	})

	t.Run("count just below a threshold does not award it", func(t *testing.T) {
		service, badgeRepo, _ := newFixture(4)
		require.NoError(t, service.CheckAndAwardBadges(ctx, "patient-1"))
		assert.Equal(t, []string{constvars.BadgeFirstSubmission}, codes(badgeRepo.badges["patient-1"]))
	})
}
