package notifications

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	RedisRepository        contracts.RedisRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			RedisRepository:        redisRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) FindNotificationsByRecipientID(ctx context.Context, recipientID string) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindNotificationsByRecipientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	notifications, err := uc.NotificationRepository.FindByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, mapNotificationToResponse(&notifications[i]))
	}
	return result, nil
}

func (uc *notificationUsecase) CountUnreadByRecipientID(ctx context.Context, recipientID string) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.CountUnreadByRecipientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	counterKey := fmt.Sprintf(constvars.RedisKeyUnreadCounterFormat, recipientID)
	return uc.RedisRepository.GetInt64(ctx, counterKey)
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, recipientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAllRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.NotificationRepository.MarkAllReadByRecipientID(ctx, recipientID); err != nil {
		return err
	}

	counterKey := fmt.Sprintf(constvars.RedisKeyUnreadCounterFormat, recipientID)
	if err := uc.RedisRepository.Delete(ctx, counterKey); err != nil {
		uc.Log.Warn("notificationUsecase.MarkAllRead unread counter reset failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}

func mapNotificationToResponse(notification *models.Notification) responses.Notification {
	return responses.Notification{
		NotificationID: notification.ID,
		RecipientID:    notification.RecipientID,
		Kind:           notification.Kind,
		Message:        notification.Message,
		Read:           notification.Read,
		CreatedAt:      notification.CreatedAt,
	}
}
