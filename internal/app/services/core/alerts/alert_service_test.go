package alerts

import (
	"context"
	"testing"

	"serenia-service/internal/app/config"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAlertRepository struct {
	inserted []*models.Alert
	byID     map[string]*models.Alert
	updated  []*models.Alert
}

func (f *fakeAlertRepository) Insert(ctx context.Context, alert *models.Alert) (string, error) {
	f.inserted = append(f.inserted, alert)
	return "alert-1", nil
}

func (f *fakeAlertRepository) Update(ctx context.Context, alert *models.Alert) error {
	f.updated = append(f.updated, alert)
	return nil
}

func (f *fakeAlertRepository) FindByID(ctx context.Context, alertID string) (*models.Alert, error) {
	return f.byID[alertID], nil
}

func (f *fakeAlertRepository) FindByPsychologistID(ctx context.Context, psychologistID string) ([]models.Alert, error) {
	return nil, nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int64, error) {
	return nil, 0, nil
}

type recordedNotification struct {
	RecipientID string
	Kind        string
	Message     string
}

type fakeNotificationService struct {
	sent []recordedNotification
}

func (f *fakeNotificationService) Notify(ctx context.Context, recipientID, kind, message string) error {
	f.sent = append(f.sent, recordedNotification{RecipientID: recipientID, Kind: kind, Message: message})
	return nil
}

func newTestAlertService(alertRepo *fakeAlertRepository, patientRepo *fakePatientRepository, notifications *fakeNotificationService) *alertService {
	return &alertService{
		AlertRepository:     alertRepo,
		PatientRepository:   patientRepo,
		NotificationService: notifications,
		InternalConfig: &config.InternalConfig{
			Clinical: config.Clinical{AlertScoreThreshold: 75},
		},
		Log: zap.NewNop(),
	}
}

func TestCreateAlertIfNeeded(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*alertService, *fakeAlertRepository, *fakeNotificationService) {
		alertRepo := &fakeAlertRepository{}
		patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", FirstName: "Anna", LastName: "Bianchi", PsychologistID: "psy-1"},
			"patient-2": {ID: "patient-2", FirstName: "Luca", LastName: "Rossi"},
		}}
		notifications := &fakeNotificationService{}
		return newTestAlertService(alertRepo, patientRepo, notifications), alertRepo, notifications
	}

	t.Run("score below threshold is a no-op", func(t *testing.T) {
		service, alertRepo, notifications := newFixture()
		require.NoError(t, service.CreateAlertIfNeeded(ctx, "patient-1", 74.99))
		assert.Empty(t, alertRepo.inserted)
		assert.Empty(t, notifications.sent)
	})

	t.Run("score at threshold raises an alert", func(t *testing.T) {
		service, alertRepo, notifications := newFixture()
		require.NoError(t, service.CreateAlertIfNeeded(ctx, "patient-1", 75))

		require.Len(t, alertRepo.inserted, 1)
		alert := alertRepo.inserted[0]
		assert.Equal(t, "patient-1", alert.PatientID)
		assert.Equal(t, "psy-1", alert.PsychologistID)
		assert.Equal(t, 75.0, alert.Score)
		assert.False(t, alert.Acknowledged)

		require.Len(t, notifications.sent, 1)
		assert.Equal(t, "psy-1", notifications.sent[0].RecipientID)
		assert.Equal(t, constvars.NotificationKindClinicalAlert, notifications.sent[0].Kind)
		assert.Contains(t, notifications.sent[0].Message, "Anna Bianchi")
	})

	t.Run("patient without psychologist produces no alert", func(t *testing.T) {
		service, alertRepo, notifications := newFixture()
		require.NoError(t, service.CreateAlertIfNeeded(ctx, "patient-2", 90))
		assert.Empty(t, alertRepo.inserted)
		assert.Empty(t, notifications.sent)
	})

	t.Run("unknown patient is not found", func(t *testing.T) {
		service, _, _ := newFixture()
		err := service.CreateAlertIfNeeded(ctx, "ghost", 90)
		assert.Error(t, err)
	})
}

func TestAcknowledgeAlert(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*alertUsecase, *fakeAlertRepository) {
		alertRepo := &fakeAlertRepository{byID: map[string]*models.Alert{
			"alert-1": {ID: "alert-1", PatientID: "patient-1", PsychologistID: "psy-1", Score: 80},
		}}
		return &alertUsecase{AlertRepository: alertRepo, Log: zap.NewNop()}, alertRepo
	}

	t.Run("owning psychologist acknowledges", func(t *testing.T) {
		usecase, alertRepo := newFixture()
		require.NoError(t, usecase.AcknowledgeAlert(ctx, "psy-1", "alert-1"))
		require.Len(t, alertRepo.updated, 1)
		assert.True(t, alertRepo.updated[0].Acknowledged)
	})

	t.Run("other psychologist is rejected", func(t *testing.T) {
		usecase, alertRepo := newFixture()
		err := usecase.AcknowledgeAlert(ctx, "psy-2", "alert-1")
		assert.Error(t, err)
		assert.Empty(t, alertRepo.updated)
	})

	t.Run("missing alert is not found", func(t *testing.T) {
		usecase, _ := newFixture()
		err := usecase.AcknowledgeAlert(ctx, "psy-1", "missing")
		assert.Error(t, err)
	})
}
