package notifications

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

type notificationService struct {
	NotificationRepository contracts.NotificationRepository
	RedisRepository        contracts.RedisRepository
	Log                    *zap.Logger
}

func NewNotificationService(
	notificationRepository contracts.NotificationRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.NotificationService {
	onceNotificationService.Do(func() {
		notificationServiceInstance = &notificationService{
			NotificationRepository: notificationRepository,
			RedisRepository:        redisRepository,
			Log:                    logger,
		}
	})
	return notificationServiceInstance
}

// Notify persists the notification and bumps the recipient's unread counter.
// The counter is a cache; a failed increment is logged, not surfaced.
func (s *notificationService) Notify(ctx context.Context, recipientID, kind, message string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.Notify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	notification := &models.Notification{
		RecipientID: recipientID,
		Kind:        kind,
		Message:     message,
		Read:        false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := s.NotificationRepository.Insert(ctx, notification); err != nil {
		return err
	}

	counterKey := fmt.Sprintf(constvars.RedisKeyUnreadCounterFormat, recipientID)
	if err := s.RedisRepository.Increment(ctx, counterKey); err != nil {
		s.Log.Warn("notificationService.Notify unread counter increment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}
