package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/responses"
)

// AlertService raises a clinical alert for the patient's psychologist when a
// submission score crosses the configured threshold. Second step of the
// side-effect pipeline.
type AlertService interface {
	CreateAlertIfNeeded(ctx context.Context, patientID string, score float64) error
}

type AlertUsecase interface {
	FindAlertsByPsychologistID(ctx context.Context, psychologistID string) ([]responses.Alert, error)
	AcknowledgeAlert(ctx context.Context, psychologistID, alertID string) error
}

type AlertRepository interface {
	Insert(ctx context.Context, alert *models.Alert) (string, error)
	Update(ctx context.Context, alert *models.Alert) error
	FindByID(ctx context.Context, alertID string) (*models.Alert, error)
	FindByPsychologistID(ctx context.Context, psychologistID string) ([]models.Alert, error)
}
