package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

// SubmissionUsecase is the questionnaire compilation and scoring core:
// identifier resolution, question-bank normalization, scoring, and the
// submit write path.
type SubmissionUsecase interface {
	// ResolveQuestionnaire maps an identifier that is either a submission id
	// or a raw type name onto the owning type name.
	ResolveQuestionnaire(ctx context.Context, identifier string) (string, error)
	// BuildQuestionnaireView normalizes the resolved type's question bank
	// into the uniform question list.
	BuildQuestionnaireView(ctx context.Context, identifier string) (*responses.QuestionnaireView, error)
	// ComputeScore derives the 0-100 percentage score for the given answers
	// against the type's score table. Pure; no writes.
	ComputeScore(ctx context.Context, typeName string, answers []requests.Answer) (float64, error)
	// SubmitQuestionnaire persists a new submission and enqueues the
	// post-persistence side effects.
	SubmitQuestionnaire(ctx context.Context, request *requests.SubmitQuestionnaire) (*responses.SubmissionResult, error)
	FindSubmissionByID(ctx context.Context, submissionID string) (*responses.Submission, error)
	FindSubmissionsByPatientID(ctx context.Context, patientID string) ([]responses.Submission, error)
}

type SubmissionRepository interface {
	Insert(ctx context.Context, submission *models.Submission) (string, error)
	FindByID(ctx context.Context, submissionID string) (*models.Submission, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Submission, error)
	CountByPatientID(ctx context.Context, patientID string) (int64, error)
}
