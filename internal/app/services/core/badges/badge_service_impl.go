package badges

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	badgeServiceInstance contracts.BadgeService
	onceBadgeService     sync.Once
)

// badgeThresholds maps submission counts to the badge earned at that count.
// Ordered ascending so a backlog of submissions awards every badge due.
var badgeThresholds = []struct {
	Count int64
	Code  string
}{
	{Count: 1, Code: constvars.BadgeFirstSubmission},
	{Count: 5, Code: constvars.BadgeFiveSubmissions},
	{Count: 10, Code: constvars.BadgeTenSubmissions},
}

type badgeService struct {
	BadgeRepository      contracts.BadgeRepository
	SubmissionRepository contracts.SubmissionRepository
	NotificationService  contracts.NotificationService
	Log                  *zap.Logger
}

func NewBadgeService(
	badgeRepository contracts.BadgeRepository,
	submissionRepository contracts.SubmissionRepository,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.BadgeService {
	onceBadgeService.Do(func() {
		badgeServiceInstance = &badgeService{
			BadgeRepository:      badgeRepository,
			SubmissionRepository: submissionRepository,
			NotificationService:  notificationService,
			Log:                  logger,
		}
	})
	return badgeServiceInstance
}

// CheckAndAwardBadges awards every badge whose threshold the patient's
// submission count has reached and that the patient does not already hold.
// Re-running it for the same patient is a no-op.
func (s *badgeService) CheckAndAwardBadges(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("badgeService.CheckAndAwardBadges called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", patientID),
	)

	submissionCount, err := s.SubmissionRepository.CountByPatientID(ctx, patientID)
	if err != nil {
		return err
	}

	held, err := s.BadgeRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return err
	}
	heldCodes := make(map[string]bool, len(held))
	for _, badge := range held {
		heldCodes[badge.Code] = true
	}

	for _, threshold := range badgeThresholds {
		if submissionCount < threshold.Count {
			break
		}
		if heldCodes[threshold.Code] {
			continue
		}

		now := time.Now()
		badge := &models.Badge{
			PatientID: patientID,
			Code:      threshold.Code,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if _, err := s.BadgeRepository.Insert(ctx, badge); err != nil {
			return err
		}

		message := fmt.Sprintf("You earned a new badge: %s", threshold.Code)
		if err := s.NotificationService.Notify(ctx, patientID, constvars.NotificationKindBadgeAwarded, message); err != nil {
			s.Log.Warn("badgeService.CheckAndAwardBadges notification failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *badgeService) FindBadgesByPatientID(ctx context.Context, patientID string) ([]responses.Badge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("badgeService.FindBadgesByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	badges, err := s.BadgeRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.Badge, 0, len(badges))
	for _, badge := range badges {
		results = append(results, responses.Badge{
			BadgeID:   badge.ID,
			PatientID: badge.PatientID,
			Code:      badge.Code,
			AwardedAt: badge.CreatedAt,
		})
	}
	return results, nil
}
