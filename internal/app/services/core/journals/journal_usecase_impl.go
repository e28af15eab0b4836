package journals

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
	journalUsecaseInstance contracts.JournalUsecase
	onceJournalUsecase     sync.Once
)

type journalUsecase struct {
	JournalRepository contracts.JournalRepository
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewJournalUsecase(
	journalRepository contracts.JournalRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.JournalUsecase {
	onceJournalUsecase.Do(func() {
		journalUsecaseInstance = &journalUsecase{
			JournalRepository: journalRepository,
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return journalUsecaseInstance
}

func (uc *journalUsecase) CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.JournalEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("journalUsecase.CreateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", request.PatientID))
	}

	now := time.Now()
	entry := &models.JournalEntry{
		PatientID: request.PatientID,
		Title:     request.Title,
		Body:      request.Body,
		EntryDate: request.EntryDate,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	entryID, err := uc.JournalRepository.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	response := mapJournalEntryToResponse(entry)
	return &response, nil
}

func (uc *journalUsecase) UpdateJournal(ctx context.Context, request *requests.UpdateJournal) (*responses.JournalEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("journalUsecase.UpdateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	entry, err := uc.JournalRepository.FindByID(ctx, request.JournalEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, exceptions.ErrJournalEntryNotFound(fmt.Errorf("no journal entry with id %s", request.JournalEntryID))
	}
	if entry.PatientID != request.PatientID {
		return nil, exceptions.ErrNotResourceOwner(fmt.Errorf("journal entry %s does not belong to patient %s", request.JournalEntryID, request.PatientID))
	}

	entry.Title = request.Title
	entry.Body = request.Body
	entry.EntryDate = request.EntryDate
	entry.UpdatedAt = time.Now()

	if err := uc.JournalRepository.Update(ctx, entry); err != nil {
		return nil, err
	}

	response := mapJournalEntryToResponse(entry)
	return &response, nil
}

func (uc *journalUsecase) FindJournalByID(ctx context.Context, patientID, journalEntryID string) (*responses.JournalEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("journalUsecase.FindJournalByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	entry, err := uc.JournalRepository.FindByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, exceptions.ErrJournalEntryNotFound(fmt.Errorf("no journal entry with id %s", journalEntryID))
	}
	if entry.PatientID != patientID {
		return nil, exceptions.ErrNotResourceOwner(fmt.Errorf("journal entry %s does not belong to patient %s", journalEntryID, patientID))
	}

	response := mapJournalEntryToResponse(entry)
	return &response, nil
}

func (uc *journalUsecase) FindJournalsByPatientID(ctx context.Context, patientID string) ([]responses.JournalEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("journalUsecase.FindJournalsByPatientID called",
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

	entries, err := uc.JournalRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.JournalEntry, 0, len(entries))
	for i := range entries {
		result = append(result, mapJournalEntryToResponse(&entries[i]))
	}
	return result, nil
}

func (uc *journalUsecase) DeleteJournalByID(ctx context.Context, patientID, journalEntryID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("journalUsecase.DeleteJournalByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	entry, err := uc.JournalRepository.FindByID(ctx, journalEntryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return exceptions.ErrJournalEntryNotFound(fmt.Errorf("no journal entry with id %s", journalEntryID))
	}
	if entry.PatientID != patientID {
		return exceptions.ErrNotResourceOwner(fmt.Errorf("journal entry %s does not belong to patient %s", journalEntryID, patientID))
	}

	return uc.JournalRepository.DeleteByID(ctx, journalEntryID)
}

func mapJournalEntryToResponse(entry *models.JournalEntry) responses.JournalEntry {
	return responses.JournalEntry{
		JournalEntryID: entry.ID,
		PatientID:      entry.PatientID,
		Title:          entry.Title,
		Body:           entry.Body,
		EntryDate:      entry.EntryDate,
	}
}
