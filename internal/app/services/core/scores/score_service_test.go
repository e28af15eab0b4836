package scores

import (
	"context"
	"testing"

	"serenia-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientScoreRepository struct {
	records map[string]*models.PatientScore
}

func (f *fakePatientScoreRepository) FindByPatientID(ctx context.Context, patientID string) (*models.PatientScore, error) {
	return f.records[patientID], nil
}

func (f *fakePatientScoreRepository) Upsert(ctx context.Context, score *models.PatientScore) error {
	copied := *score
	f.records[score.PatientID] = &copied
	return nil
}

type fakeSubmissionRepository struct {
	submissions map[string]*models.Submission
}

func (f *fakeSubmissionRepository) Insert(ctx context.Context, submission *models.Submission) (string, error) {
	return "", nil
}

func (f *fakeSubmissionRepository) FindByID(ctx context.Context, submissionID string) (*models.Submission, error) {
	return f.submissions[submissionID], nil
}

func (f *fakeSubmissionRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	return 0, nil
}

func TestUpdatePatientScore(t *testing.T) {
	ctx := context.Background()

	scoreRepo := &fakePatientScoreRepository{records: map[string]*models.PatientScore{}}
	submissionRepo := &fakeSubmissionRepository{submissions: map[string]*models.Submission{
		"sub-1": {ID: "sub-1", PatientID: "patient-1", Score: 80},
		"sub-2": {ID: "sub-2", PatientID: "patient-1", Score: 40},
		"sub-3": {ID: "sub-3", PatientID: "patient-1", Score: 60},
	}}
	service := &scoreService{
		PatientScoreRepository: scoreRepo,
		SubmissionRepository:   submissionRepo,
		Log:                    zap.NewNop(),
	}

	t.Run("first submission seeds the record", func(t *testing.T) {
		require.NoError(t, service.UpdatePatientScore(ctx, "patient-1", "sub-1"))

		record := scoreRepo.records["patient-1"]
		require.NotNil(t, record)
		assert.Equal(t, 1, record.SubmissionCount)
		assert.Equal(t, 80.0, record.AverageScore)
		assert.Equal(t, 80.0, record.LastScore)
		assert.Equal(t, "sub-1", record.LastSubmissionID)
	})

	t.Run("later submissions fold into a running average", func(t *testing.T) {
		require.NoError(t, service.UpdatePatientScore(ctx, "patient-1", "sub-2"))
		require.NoError(t, service.UpdatePatientScore(ctx, "patient-1", "sub-3"))

		record := scoreRepo.records["patient-1"]
		require.NotNil(t, record)
		assert.Equal(t, 3, record.SubmissionCount)
		assert.InDelta(t, 60.0, record.AverageScore, 1e-9)
		assert.Equal(t, 60.0, record.LastScore)
		assert.Equal(t, "sub-3", record.LastSubmissionID)
	})

	t.Run("unknown submission is an error", func(t *testing.T) {
		err := service.UpdatePatientScore(ctx, "patient-1", "missing")
		assert.Error(t, err)
	})
}

func TestFindScoreByPatientID(t *testing.T) {
	ctx := context.Background()
	scoreRepo := &fakePatientScoreRepository{records: map[string]*models.PatientScore{
		"patient-1": {PatientID: "patient-1", SubmissionCount: 2, AverageScore: 55, LastScore: 60, LastSubmissionID: "sub-9"},
	}}
	service := &scoreService{
		PatientScoreRepository: scoreRepo,
		SubmissionRepository:   &fakeSubmissionRepository{},
		Log:                    zap.NewNop(),
	}

	t.Run("existing record maps through", func(t *testing.T) {
		record, err := service.FindScoreByPatientID(ctx, "patient-1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, 2, record.SubmissionCount)
		assert.Equal(t, 55.0, record.AverageScore)
	})

	t.Run("absent record is nil, not an error", func(t *testing.T) {
		record, err := service.FindScoreByPatientID(ctx, "patient-2")
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}
