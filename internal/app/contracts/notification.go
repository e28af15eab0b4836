package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/responses"
)

// NotificationService is the write side used by the side-effect pipeline and
// by other usecases; NotificationUsecase is the read side behind the HTTP
// surface.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, kind, message string) error
}

type NotificationUsecase interface {
	FindNotificationsByRecipientID(ctx context.Context, recipientID string) ([]responses.Notification, error)
	CountUnreadByRecipientID(ctx context.Context, recipientID string) (int64, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) (string, error)
	FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkAllReadByRecipientID(ctx context.Context, recipientID string) error
}
