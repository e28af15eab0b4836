package models

// Submission is one patient's completed instance of a questionnaire type.
// Score is a snapshot computed at submission time and never recomputed.
type Submission struct {
	ID         string         `bson:"_id,omitempty"`
	PatientID  string         `bson:"patientId"`
	TypeName   string         `bson:"typeName"`
	Answers    map[string]int `bson:"answers"`
	Score      float64        `bson:"score"`
	ChangeFlag bool           `bson:"changeFlag"`
	TimeModel  `bson:",inline"`
}
