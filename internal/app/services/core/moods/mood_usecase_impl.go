package moods

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
	moodUsecaseInstance contracts.MoodUsecase
	onceMoodUsecase     sync.Once
)

type moodUsecase struct {
	MoodRepository    contracts.MoodRepository
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewMoodUsecase(
	moodRepository contracts.MoodRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.MoodUsecase {
	onceMoodUsecase.Do(func() {
		moodUsecaseInstance = &moodUsecase{
			MoodRepository:    moodRepository,
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return moodUsecaseInstance
}

func (uc *moodUsecase) CreateMoodEntry(ctx context.Context, request *requests.CreateMoodEntry) (*responses.MoodEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moodUsecase.CreateMoodEntry called",
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
	entry := &models.MoodEntry{
		PatientID: request.PatientID,
		Mood:      request.Mood,
		Intensity: request.Intensity,
		Note:      request.Note,
		EntryDate: request.EntryDate,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	entryID, err := uc.MoodRepository.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	response := mapMoodEntryToResponse(entry)
	return &response, nil
}

func (uc *moodUsecase) UpdateMoodEntry(ctx context.Context, request *requests.UpdateMoodEntry) (*responses.MoodEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moodUsecase.UpdateMoodEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	entry, err := uc.MoodRepository.FindByID(ctx, request.MoodEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, exceptions.ErrMoodEntryNotFound(fmt.Errorf("no mood entry with id %s", request.MoodEntryID))
	}
	if entry.PatientID != request.PatientID {
		return nil, exceptions.ErrNotResourceOwner(fmt.Errorf("mood entry %s does not belong to patient %s", request.MoodEntryID, request.PatientID))
	}

	entry.Mood = request.Mood
	entry.Intensity = request.Intensity
	entry.Note = request.Note
	entry.EntryDate = request.EntryDate
	entry.UpdatedAt = time.Now()

	if err := uc.MoodRepository.Update(ctx, entry); err != nil {
		return nil, err
	}

	response := mapMoodEntryToResponse(entry)
	return &response, nil
}

func (uc *moodUsecase) FindMoodEntriesByPatientID(ctx context.Context, patientID string, year, month int) ([]responses.MoodEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moodUsecase.FindMoodEntriesByPatientID called",
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

	entries, err := uc.MoodRepository.FindByPatientID(ctx, patientID, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]responses.MoodEntry, 0, len(entries))
	for i := range entries {
		result = append(result, mapMoodEntryToResponse(&entries[i]))
	}
	return result, nil
}

func (uc *moodUsecase) DeleteMoodEntryByID(ctx context.Context, patientID, moodEntryID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moodUsecase.DeleteMoodEntryByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	entry, err := uc.MoodRepository.FindByID(ctx, moodEntryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return exceptions.ErrMoodEntryNotFound(fmt.Errorf("no mood entry with id %s", moodEntryID))
	}
	if entry.PatientID != patientID {
		return exceptions.ErrNotResourceOwner(fmt.Errorf("mood entry %s does not belong to patient %s", moodEntryID, patientID))
	}

	return uc.MoodRepository.DeleteByID(ctx, moodEntryID)
}

func mapMoodEntryToResponse(entry *models.MoodEntry) responses.MoodEntry {
	return responses.MoodEntry{
		MoodEntryID: entry.ID,
		PatientID:   entry.PatientID,
		Mood:        entry.Mood,
		Intensity:   entry.Intensity,
		Note:        entry.Note,
		EntryDate:   entry.EntryDate,
	}
}
