package requests

// Answer is one selected option index for one question. Value is an option
// index into the type's score table; out-of-range values are skipped during
// scoring rather than rejected.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

type SubmitQuestionnaire struct {
	PatientID string   `json:"patient_id"`
	TypeName  string   `json:"type_name"`
	Answers   []Answer `json:"answers"`
}

type ComputeScore struct {
	Answers []Answer `json:"answers"`
}
