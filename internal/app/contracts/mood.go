package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type MoodUsecase interface {
	CreateMoodEntry(ctx context.Context, request *requests.CreateMoodEntry) (*responses.MoodEntry, error)
	UpdateMoodEntry(ctx context.Context, request *requests.UpdateMoodEntry) (*responses.MoodEntry, error)
	FindMoodEntriesByPatientID(ctx context.Context, patientID string, year, month int) ([]responses.MoodEntry, error)
	DeleteMoodEntryByID(ctx context.Context, patientID, moodEntryID string) error
}

type MoodRepository interface {
	Insert(ctx context.Context, entry *models.MoodEntry) (string, error)
	Update(ctx context.Context, entry *models.MoodEntry) error
	FindByID(ctx context.Context, moodEntryID string) (*models.MoodEntry, error)
	FindByPatientID(ctx context.Context, patientID string, year, month int) ([]models.MoodEntry, error)
	CountByPatientID(ctx context.Context, patientID string) (int64, error)
	DeleteByID(ctx context.Context, moodEntryID string) error
}
