package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type JournalUsecase interface {
	CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.JournalEntry, error)
	UpdateJournal(ctx context.Context, request *requests.UpdateJournal) (*responses.JournalEntry, error)
	FindJournalByID(ctx context.Context, patientID, journalEntryID string) (*responses.JournalEntry, error)
	FindJournalsByPatientID(ctx context.Context, patientID string) ([]responses.JournalEntry, error)
	DeleteJournalByID(ctx context.Context, patientID, journalEntryID string) error
}

type JournalRepository interface {
	Insert(ctx context.Context, entry *models.JournalEntry) (string, error)
	Update(ctx context.Context, entry *models.JournalEntry) error
	FindByID(ctx context.Context, journalEntryID string) (*models.JournalEntry, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.JournalEntry, error)
	CountByPatientID(ctx context.Context, patientID string) (int64, error)
	DeleteByID(ctx context.Context, journalEntryID string) error
}
