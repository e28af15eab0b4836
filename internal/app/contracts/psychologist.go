package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type PsychologistUsecase interface {
	CreatePsychologist(ctx context.Context, request *requests.CreatePsychologist) (*responses.Psychologist, error)
	UpdatePsychologist(ctx context.Context, request *requests.UpdatePsychologist) (*responses.Psychologist, error)
	FindPsychologistByID(ctx context.Context, psychologistID string) (*responses.Psychologist, error)
	FindAllPsychologists(ctx context.Context) ([]responses.Psychologist, error)
	DeletePsychologistByID(ctx context.Context, psychologistID string) error
}

type PsychologistRepository interface {
	Insert(ctx context.Context, psychologist *models.Psychologist) (string, error)
	Update(ctx context.Context, psychologist *models.Psychologist) error
	FindByID(ctx context.Context, psychologistID string) (*models.Psychologist, error)
	FindAll(ctx context.Context) ([]models.Psychologist, error)
	DeleteByID(ctx context.Context, psychologistID string) error
}
