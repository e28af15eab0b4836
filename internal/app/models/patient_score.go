package models

// PatientScore is the per-patient aggregate updated after every submission.
type PatientScore struct {
	ID               string  `bson:"_id,omitempty"`
	PatientID        string  `bson:"patientId"`
	LastScore        float64 `bson:"lastScore"`
	LastSubmissionID string  `bson:"lastSubmissionId"`
	SubmissionCount  int     `bson:"submissionCount"`
	AverageScore     float64 `bson:"averageScore"`
	TimeModel        `bson:",inline"`
}
