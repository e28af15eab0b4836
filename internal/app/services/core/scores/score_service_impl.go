package scores

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	scoreServiceInstance contracts.ScoreService
	onceScoreService     sync.Once
)

type scoreService struct {
	PatientScoreRepository contracts.PatientScoreRepository
	SubmissionRepository   contracts.SubmissionRepository
	Log                    *zap.Logger
}

func NewScoreService(
	patientScoreRepository contracts.PatientScoreRepository,
	submissionRepository contracts.SubmissionRepository,
	logger *zap.Logger,
) contracts.ScoreService {
	onceScoreService.Do(func() {
		scoreServiceInstance = &scoreService{
			PatientScoreRepository: patientScoreRepository,
			SubmissionRepository:   submissionRepository,
			Log:                    logger,
		}
	})
	return scoreServiceInstance
}

// UpdatePatientScore folds the submission's score into the patient's
// aggregate record using a running average.
func (s *scoreService) UpdatePatientScore(ctx context.Context, patientID, submissionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("scoreService.UpdatePatientScore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
	)

	submission, err := s.SubmissionRepository.FindByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return exceptions.ErrSubmissionNotFound(fmt.Errorf("no submission with id %s", submissionID))
	}

	record, err := s.PatientScoreRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return err
	}

	now := time.Now()
	if record == nil {
		record = &models.PatientScore{
			PatientID:        patientID,
			LastScore:        submission.Score,
			LastSubmissionID: submissionID,
			SubmissionCount:  1,
			AverageScore:     submission.Score,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	} else {
		record.SubmissionCount++
		record.AverageScore += (submission.Score - record.AverageScore) / float64(record.SubmissionCount)
		record.LastScore = submission.Score
		record.LastSubmissionID = submissionID
		record.UpdatedAt = now
	}

	return s.PatientScoreRepository.Upsert(ctx, record)
}

func (s *scoreService) FindScoreByPatientID(ctx context.Context, patientID string) (*responses.PatientScore, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("scoreService.FindScoreByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	record, err := s.PatientScoreRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &responses.PatientScore{
		PatientID:        record.PatientID,
		LastScore:        record.LastScore,
		LastSubmissionID: record.LastSubmissionID,
		SubmissionCount:  record.SubmissionCount,
		AverageScore:     record.AverageScore,
	}, nil
}
