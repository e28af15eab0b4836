package requests

// CreateQuestionnaireType accepts the question bank, answer fields and score
// table in any of their stored shapes; they are decoded lazily by flexdata,
// never at write time.
type CreateQuestionnaireType struct {
	Name                  string      `json:"name" validate:"required,min=2,max=64"`
	Description           string      `json:"description,omitempty"`
	Questions             interface{} `json:"questions" validate:"required"`
	AnswerFields          interface{} `json:"answer_fields,omitempty"`
	ScoreTable            interface{} `json:"score_table" validate:"required"`
	AdministrationMinutes int         `json:"administration_minutes" validate:"gte=0"`
}

type UpdateQuestionnaireType struct {
	Description           string      `json:"description,omitempty"`
	Questions             interface{} `json:"questions" validate:"required"`
	AnswerFields          interface{} `json:"answer_fields,omitempty"`
	ScoreTable            interface{} `json:"score_table" validate:"required"`
	AdministrationMinutes int         `json:"administration_minutes" validate:"gte=0"`
	Name                  string
}
