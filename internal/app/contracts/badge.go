package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/responses"
)

// BadgeService re-evaluates a patient's badge eligibility. Third step of the
// side-effect pipeline; idempotent.
type BadgeService interface {
	CheckAndAwardBadges(ctx context.Context, patientID string) error
	FindBadgesByPatientID(ctx context.Context, patientID string) ([]responses.Badge, error)
}

type BadgeRepository interface {
	Insert(ctx context.Context, badge *models.Badge) (string, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Badge, error)
}
