package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/responses"
)

// ScoreService maintains the per-patient aggregate score record. It is the
// first step of the post-submission side-effect pipeline.
type ScoreService interface {
	UpdatePatientScore(ctx context.Context, patientID, submissionID string) error
	FindScoreByPatientID(ctx context.Context, patientID string) (*responses.PatientScore, error)
}

type PatientScoreRepository interface {
	FindByPatientID(ctx context.Context, patientID string) (*models.PatientScore, error)
	Upsert(ctx context.Context, score *models.PatientScore) error
}
