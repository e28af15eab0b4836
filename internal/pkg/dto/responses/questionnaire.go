package responses

import (
	"serenia-service/internal/pkg/flexdata"
	"time"
)

// QuestionnaireView is the read-path result: the resolved type's question
// bank normalized into the uniform descriptor list.
type QuestionnaireView struct {
	Identifier            string              `json:"identifier"`
	TypeName              string              `json:"type_name"`
	AdministrationMinutes int                 `json:"administration_minutes"`
	Questions             []flexdata.Question `json:"questions"`
}

type QuestionnaireType struct {
	Name                  string      `json:"name"`
	Description           string      `json:"description,omitempty"`
	Questions             interface{} `json:"questions"`
	AnswerFields          interface{} `json:"answer_fields,omitempty"`
	ScoreTable            interface{} `json:"score_table"`
	AdministrationMinutes int         `json:"administration_minutes"`
}

type ScorePreview struct {
	TypeName string  `json:"type_name"`
	Score    float64 `json:"score"`
}

type SubmissionResult struct {
	SubmissionID string  `json:"submission_id"`
	Score        float64 `json:"score"`
}

type Submission struct {
	SubmissionID string         `json:"submission_id"`
	PatientID    string         `json:"patient_id"`
	TypeName     string         `json:"type_name"`
	Answers      map[string]int `json:"answers"`
	Score        float64        `json:"score"`
	ChangeFlag   bool           `json:"change_flag"`
	SubmittedAt  time.Time      `json:"submitted_at"`
}
