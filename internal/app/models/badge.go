package models

type Badge struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Code      string `bson:"code"`
	TimeModel `bson:",inline"`
}
