package alerts

import (
	"context"
	"fmt"
	"serenia-service/internal/app/config"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	alertServiceInstance contracts.AlertService
	onceAlertService     sync.Once
)

type alertService struct {
	AlertRepository     contracts.AlertRepository
	PatientRepository   contracts.PatientRepository
	NotificationService contracts.NotificationService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewAlertService(
	alertRepository contracts.AlertRepository,
	patientRepository contracts.PatientRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AlertService {
	onceAlertService.Do(func() {
		alertServiceInstance = &alertService{
			AlertRepository:     alertRepository,
			PatientRepository:   patientRepository,
			NotificationService: notificationService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return alertServiceInstance
}

// CreateAlertIfNeeded raises a clinical alert for the patient's assigned
// psychologist when the score reaches the configured threshold. Patients
// without an assigned psychologist produce no alert.
func (s *alertService) CreateAlertIfNeeded(ctx context.Context, patientID string, score float64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("alertService.CreateAlertIfNeeded called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Float64(constvars.LoggingScoreKey, score),
	)

	if score < s.InternalConfig.Clinical.AlertScoreThreshold {
		return nil
	}

	patient, err := s.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", patientID))
	}
	if patient.PsychologistID == "" {
		s.Log.Warn("alertService.CreateAlertIfNeeded patient has no assigned psychologist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil
	}

	now := time.Now()
	alert := &models.Alert{
		PatientID:      patientID,
		PsychologistID: patient.PsychologistID,
		Score:          score,
		Acknowledged:   false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := s.AlertRepository.Insert(ctx, alert); err != nil {
		return err
	}

	message := fmt.Sprintf("Clinical alert: patient %s %s scored %.2f", patient.FirstName, patient.LastName, score)
	if err := s.NotificationService.Notify(ctx, patient.PsychologistID, constvars.NotificationKindClinicalAlert, message); err != nil {
		s.Log.Warn("alertService.CreateAlertIfNeeded psychologist notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}
