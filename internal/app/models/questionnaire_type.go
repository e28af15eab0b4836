package models

// QuestionnaireType is long-lived reference data describing one screening
// instrument. The Questions, AnswerFields and ScoreTable columns are stored
// heterogeneously (semicolon string, array, or wrapper object) and are only
// ever interpreted through the flexdata decoder.
type QuestionnaireType struct {
	ID                    string      `bson:"_id,omitempty"`
	Name                  string      `bson:"name"`
	Description           string      `bson:"description,omitempty"`
	Questions             interface{} `bson:"questions"`
	AnswerFields          interface{} `bson:"answerFields,omitempty"`
	ScoreTable            interface{} `bson:"scoreTable"`
	AdministrationMinutes int         `bson:"administrationMinutes"`
	TimeModel             `bson:",inline"`
}
