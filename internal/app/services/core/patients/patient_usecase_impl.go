package patients

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository    contracts.PatientRepository
	SubmissionRepository contracts.SubmissionRepository
	JournalRepository    contracts.JournalRepository
	MoodRepository       contracts.MoodRepository
	NotificationUsecase  contracts.NotificationUsecase
	ScoreService         contracts.ScoreService
	Log                  *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	submissionRepository contracts.SubmissionRepository,
	journalRepository contracts.JournalRepository,
	moodRepository contracts.MoodRepository,
	notificationUsecase contracts.NotificationUsecase,
	scoreService contracts.ScoreService,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository:    patientRepository,
			SubmissionRepository: submissionRepository,
			JournalRepository:    journalRepository,
			MoodRepository:       moodRepository,
			NotificationUsecase:  notificationUsecase,
			ScoreService:         scoreService,
			Log:                  logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &models.Patient{
		FiscalCode:     request.FiscalCode,
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Email:          request.Email,
		BirthDate:      request.BirthDate,
		PsychologistID: request.PsychologistID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	response := mapPatientToResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", patientID))
	}

	response := mapPatientToResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, page, pageSize int) ([]responses.Patient, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, total, err := uc.PatientRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, mapPatientToResponse(&patients[i]))
	}
	return result, total, nil
}

// BuildPatientDashboard aggregates the patient's activity counters and score
// record into a single read model.
func (uc *patientUsecase) BuildPatientDashboard(ctx context.Context, patientID string) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.BuildPatientDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", patientID))
	}

	submissionCount, err := uc.SubmissionRepository.CountByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	journalCount, err := uc.JournalRepository.CountByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	moodEntryCount, err := uc.MoodRepository.CountByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	unread, err := uc.NotificationUsecase.CountUnreadByRecipientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	dashboard := &responses.PatientDashboard{
		PatientID:           patientID,
		SubmissionCount:     submissionCount,
		JournalCount:        journalCount,
		MoodEntryCount:      moodEntryCount,
		UnreadNotifications: unread,
	}

	// A patient with no submissions has no score record yet; the dashboard
	// simply omits it.
	scoreRecord, err := uc.ScoreService.FindScoreByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dashboard.ScoreRecord = scoreRecord

	return dashboard, nil
}

func mapPatientToResponse(patient *models.Patient) responses.Patient {
	return responses.Patient{
		PatientID:      patient.ID,
		FiscalCode:     patient.FiscalCode,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		Email:          patient.Email,
		BirthDate:      patient.BirthDate,
		PsychologistID: patient.PsychologistID,
	}
}
