package alerts

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	alertUsecaseInstance contracts.AlertUsecase
	onceAlertUsecase     sync.Once
)

type alertUsecase struct {
	AlertRepository contracts.AlertRepository
	Log             *zap.Logger
}

func NewAlertUsecase(
	alertRepository contracts.AlertRepository,
	logger *zap.Logger,
) contracts.AlertUsecase {
	onceAlertUsecase.Do(func() {
		alertUsecaseInstance = &alertUsecase{
			AlertRepository: alertRepository,
			Log:             logger,
		}
	})
	return alertUsecaseInstance
}

func (uc *alertUsecase) FindAlertsByPsychologistID(ctx context.Context, psychologistID string) ([]responses.Alert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.FindAlertsByPsychologistID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, psychologistID),
	)

	alerts, err := uc.AlertRepository.FindByPsychologistID(ctx, psychologistID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Alert, 0, len(alerts))
	for i := range alerts {
		result = append(result, mapAlertToResponse(&alerts[i]))
	}
	return result, nil
}

func (uc *alertUsecase) AcknowledgeAlert(ctx context.Context, psychologistID, alertID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.AcknowledgeAlert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, psychologistID),
	)

	alert, err := uc.AlertRepository.FindByID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return exceptions.ErrAlertNotFound(fmt.Errorf("no alert with id %s", alertID))
	}
	if alert.PsychologistID != psychologistID {
		return exceptions.ErrNotResourceOwner(fmt.Errorf("alert %s does not belong to psychologist %s", alertID, psychologistID))
	}

	alert.Acknowledged = true
	alert.UpdatedAt = time.Now()
	return uc.AlertRepository.Update(ctx, alert)
}

func mapAlertToResponse(alert *models.Alert) responses.Alert {
	return responses.Alert{
		AlertID:        alert.ID,
		PatientID:      alert.PatientID,
		PsychologistID: alert.PsychologistID,
		Score:          alert.Score,
		Acknowledged:   alert.Acknowledged,
		CreatedAt:      alert.CreatedAt,
	}
}
