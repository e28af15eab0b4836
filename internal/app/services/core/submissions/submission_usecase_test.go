package submissions

import (
	"context"
	"testing"

	"serenia-service/internal/app/models"
	"serenia-service/internal/app/services/shared/submissionqueue"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubmissionRepository struct {
	insertFn          func(ctx context.Context, submission *models.Submission) (string, error)
	findByIDFn        func(ctx context.Context, submissionID string) (*models.Submission, error)
	findByPatientIDFn func(ctx context.Context, patientID string) ([]models.Submission, error)
	countFn           func(ctx context.Context, patientID string) (int64, error)
}

func (f *fakeSubmissionRepository) Insert(ctx context.Context, submission *models.Submission) (string, error) {
	return f.insertFn(ctx, submission)
}

func (f *fakeSubmissionRepository) FindByID(ctx context.Context, submissionID string) (*models.Submission, error) {
	return f.findByIDFn(ctx, submissionID)
}

func (f *fakeSubmissionRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Submission, error) {
	return f.findByPatientIDFn(ctx, patientID)
}

func (f *fakeSubmissionRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	return f.countFn(ctx, patientID)
}

type fakeQuestionnaireTypeRepository struct {
	types map[string]*models.QuestionnaireType
}

func (f *fakeQuestionnaireTypeRepository) FindByName(ctx context.Context, typeName string) (*models.QuestionnaireType, error) {
	return f.types[typeName], nil
}

func (f *fakeQuestionnaireTypeRepository) FindAll(ctx context.Context) ([]models.QuestionnaireType, error) {
	return nil, nil
}

func (f *fakeQuestionnaireTypeRepository) Insert(ctx context.Context, questionnaireType *models.QuestionnaireType) (string, error) {
	return "", nil
}

func (f *fakeQuestionnaireTypeRepository) Update(ctx context.Context, questionnaireType *models.QuestionnaireType) error {
	return nil
}

func (f *fakeQuestionnaireTypeRepository) DeleteByName(ctx context.Context, typeName string) error {
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int64, error) {
	return nil, 0, nil
}

type fakeEventPublisher struct {
	published []submissionqueue.SubmissionCompletedMessage
}

func (f *fakeEventPublisher) Enqueue(ctx context.Context, message submissionqueue.SubmissionCompletedMessage) error {
	f.published = append(f.published, message)
	return nil
}

func newTestUsecase(
	submissionRepo *fakeSubmissionRepository,
	typeRepo *fakeQuestionnaireTypeRepository,
	patientRepo *fakePatientRepository,
	publisher *fakeEventPublisher,
) *submissionUsecase {
	return &submissionUsecase{
		SubmissionRepository:        submissionRepo,
		QuestionnaireTypeRepository: typeRepo,
		PatientRepository:           patientRepo,
		EventPublisher:              publisher,
		Log:                         zap.NewNop(),
	}
}

func phq9Type() *models.QuestionnaireType {
	return &models.QuestionnaireType{
		Name:                  "PHQ9",
		Questions:             "Little interest?;Feeling down?",
		AnswerFields:          "0;1;2;3",
		ScoreTable:            "0;1;2;3",
		AdministrationMinutes: 5,
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a CustomError, got %T", err)
	return customErr.StatusCode
}

func TestResolveQuestionnaire(t *testing.T) {
	ctx := context.Background()
	typeRepo := &fakeQuestionnaireTypeRepository{types: map[string]*models.QuestionnaireType{"PHQ9": phq9Type()}}
	submissionRepo := &fakeSubmissionRepository{
		findByIDFn: func(ctx context.Context, submissionID string) (*models.Submission, error) {
			if submissionID == "3f2504e0-4f89-41d3-9a0c-0305e82c3301" {
				return &models.Submission{ID: submissionID, TypeName: "PHQ9"}, nil
			}
			return nil, nil
		},
	}
	uc := newTestUsecase(submissionRepo, typeRepo, &fakePatientRepository{}, &fakeEventPublisher{})

	t.Run("raw type name passes through", func(t *testing.T) {
		typeName, err := uc.ResolveQuestionnaire(ctx, "PHQ9")
		require.NoError(t, err)
		assert.Equal(t, "PHQ9", typeName)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		typeName, err := uc.ResolveQuestionnaire(ctx, "  PHQ9  ")
		require.NoError(t, err)
		assert.Equal(t, "PHQ9", typeName)
	})

	t.Run("id-shaped identifier resolves through the submission", func(t *testing.T) {
		typeName, err := uc.ResolveQuestionnaire(ctx, "3f2504e0-4f89-41d3-9a0c-0305e82c3301")
		require.NoError(t, err)
		assert.Equal(t, "PHQ9", typeName)
	})

	t.Run("id-shaped identifier with no submission is not found", func(t *testing.T) {
		_, err := uc.ResolveQuestionnaire(ctx, "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})

	t.Run("unknown type name is not found", func(t *testing.T) {
		_, err := uc.ResolveQuestionnaire(ctx, "GAD7")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})

	t.Run("empty identifier is rejected", func(t *testing.T) {
		_, err := uc.ResolveQuestionnaire(ctx, "   ")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	})

	t.Run("uppercase hex is not id-shaped", func(t *testing.T) {
		// Falls through to type-name lookup and misses.
		_, err := uc.ResolveQuestionnaire(ctx, "3F2504E0-4F89-41D3-9A0C-0305E82C3301")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})
}

func TestBuildQuestionnaireView(t *testing.T) {
	ctx := context.Background()
	typeRepo := &fakeQuestionnaireTypeRepository{types: map[string]*models.QuestionnaireType{
		"PHQ9":  phq9Type(),
		"EMPTY": {Name: "EMPTY", Questions: "{broken", ScoreTable: "0;1"},
	}}
	uc := newTestUsecase(&fakeSubmissionRepository{}, typeRepo, &fakePatientRepository{}, &fakeEventPublisher{})

	t.Run("normalizes the question bank", func(t *testing.T) {
		view, err := uc.BuildQuestionnaireView(ctx, "PHQ9")
		require.NoError(t, err)
		assert.Equal(t, "PHQ9", view.TypeName)
		assert.Equal(t, 5, view.AdministrationMinutes)
		require.Len(t, view.Questions, 2)
		assert.Equal(t, "q1", view.Questions[0].ID)
		assert.Equal(t, 3, view.Questions[0].MaxValue)
		assert.Equal(t, []string{"0", "1", "2", "3"}, view.Questions[0].Options)
	})

	t.Run("unparseable question bank yields an empty list", func(t *testing.T) {
		view, err := uc.BuildQuestionnaireView(ctx, "EMPTY")
		require.NoError(t, err)
		assert.Empty(t, view.Questions)
	})

	t.Run("unknown type is not found", func(t *testing.T) {
		_, err := uc.BuildQuestionnaireView(ctx, "NOPE")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})
}

func TestComputeScore(t *testing.T) {
	ctx := context.Background()
	typeRepo := &fakeQuestionnaireTypeRepository{types: map[string]*models.QuestionnaireType{
		"PHQ9":   phq9Type(),
		"ZEROES": {Name: "ZEROES", ScoreTable: "0;0;0"},
	}}
	uc := newTestUsecase(&fakeSubmissionRepository{}, typeRepo, &fakePatientRepository{}, &fakeEventPublisher{})

	t.Run("maximum answers score 100", func(t *testing.T) {
		score, err := uc.ComputeScore(ctx, "PHQ9", []requests.Answer{
			{QuestionID: "q1", Value: 3},
			{QuestionID: "q2", Value: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("partial answers score proportionally", func(t *testing.T) {
		score, err := uc.ComputeScore(ctx, "PHQ9", []requests.Answer{
			{QuestionID: "q1", Value: 1},
			{QuestionID: "q2", Value: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("all-zero score table yields zero", func(t *testing.T) {
		score, err := uc.ComputeScore(ctx, "ZEROES", []requests.Answer{
			{QuestionID: "q1", Value: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("out-of-range values count in the denominator only", func(t *testing.T) {
		score, err := uc.ComputeScore(ctx, "PHQ9", []requests.Answer{
			{QuestionID: "q1", Value: 5},
			{QuestionID: "q2", Value: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("negative values are skipped the same way", func(t *testing.T) {
		score, err := uc.ComputeScore(ctx, "PHQ9", []requests.Answer{
			{QuestionID: "q1", Value: -1},
			{QuestionID: "q2", Value: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		for value := -2; value <= 5; value++ {
			score, err := uc.ComputeScore(ctx, "PHQ9", []requests.Answer{{QuestionID: "q1", Value: value}})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	})

	t.Run("identical input scores identically", func(t *testing.T) {
		answers := []requests.Answer{{QuestionID: "q1", Value: 2}, {QuestionID: "q2", Value: 1}}
		first, err := uc.ComputeScore(ctx, "PHQ9", answers)
		require.NoError(t, err)
		second, err := uc.ComputeScore(ctx, "PHQ9", answers)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("blank type name is rejected", func(t *testing.T) {
		_, err := uc.ComputeScore(ctx, "  ", nil)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	})

	t.Run("unknown type name is not found", func(t *testing.T) {
		_, err := uc.ComputeScore(ctx, "GAD7", nil)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})
}

func TestSubmitQuestionnaire(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*submissionUsecase, *fakeSubmissionRepository, *fakeEventPublisher) {
		typeRepo := &fakeQuestionnaireTypeRepository{types: map[string]*models.QuestionnaireType{"PHQ9": phq9Type()}}
		patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", FirstName: "Anna", LastName: "Bianchi"},
		}}
		publisher := &fakeEventPublisher{}
		submissionRepo := &fakeSubmissionRepository{
			insertFn: func(ctx context.Context, submission *models.Submission) (string, error) {
				return "3f2504e0-4f89-41d3-9a0c-0305e82c3301", nil
			},
		}
		return newTestUsecase(submissionRepo, typeRepo, patientRepo, publisher), submissionRepo, publisher
	}

	t.Run("persists and enqueues one completed event", func(t *testing.T) {
		uc, _, publisher := newFixture()
		result, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "patient-1",
			TypeName:  "PHQ9",
			Answers:   []requests.Answer{{QuestionID: "q1", Value: 3}, {QuestionID: "q2", Value: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", result.SubmissionID)
		assert.Equal(t, 100.0, result.Score)

		require.Len(t, publisher.published, 1)
		event := publisher.published[0]
		assert.Equal(t, result.SubmissionID, event.SubmissionID)
		assert.Equal(t, "patient-1", event.PatientID)
		assert.Equal(t, "PHQ9", event.TypeName)
		assert.Equal(t, 100.0, event.Score)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("duplicate question ids keep the last value", func(t *testing.T) {
		uc, repo, _ := newFixture()
		var inserted *models.Submission
		repo.insertFn = func(ctx context.Context, submission *models.Submission) (string, error) {
			inserted = submission
			return "3f2504e0-4f89-41d3-9a0c-0305e82c3301", nil
		}

		_, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "patient-1",
			TypeName:  "PHQ9",
			Answers:   []requests.Answer{{QuestionID: "q1", Value: 1}, {QuestionID: "q1", Value: 3}},
		})
		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, map[string]int{"q1": 3}, inserted.Answers)
		assert.False(t, inserted.ChangeFlag)
	})

	t.Run("unknown patient fails before any write", func(t *testing.T) {
		uc, repo, publisher := newFixture()
		repo.insertFn = func(ctx context.Context, submission *models.Submission) (string, error) {
			t.Fatal("insert must not be called")
			return "", nil
		}

		_, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "ghost",
			TypeName:  "PHQ9",
			Answers:   []requests.Answer{{QuestionID: "q1", Value: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
		assert.Empty(t, publisher.published)
	})

	t.Run("blank type name is rejected", func(t *testing.T) {
		uc, _, _ := newFixture()
		_, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "patient-1",
			TypeName:  " ",
			Answers:   []requests.Answer{{QuestionID: "q1", Value: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	})

	t.Run("empty answers are rejected", func(t *testing.T) {
		uc, _, _ := newFixture()
		_, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "patient-1",
			TypeName:  "PHQ9",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	})

	t.Run("missing generated id is a server error", func(t *testing.T) {
		uc, repo, publisher := newFixture()
		repo.insertFn = func(ctx context.Context, submission *models.Submission) (string, error) {
			return "", nil
		}

		_, err := uc.SubmitQuestionnaire(ctx, &requests.SubmitQuestionnaire{
			PatientID: "patient-1",
			TypeName:  "PHQ9",
			Answers:   []requests.Answer{{QuestionID: "q1", Value: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, statusCode(t, err))
		assert.Empty(t, publisher.published)
	})
}
