package models

type Alert struct {
	ID             string  `bson:"_id,omitempty"`
	PatientID      string  `bson:"patientId"`
	PsychologistID string  `bson:"psychologistId"`
	Score          float64 `bson:"score"`
	Acknowledged   bool    `bson:"acknowledged"`
	TimeModel      `bson:",inline"`
}
