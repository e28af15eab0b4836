package responses

import "time"

type Alert struct {
	AlertID        string    `json:"alert_id"`
	PatientID      string    `json:"patient_id"`
	PsychologistID string    `json:"psychologist_id"`
	Score          float64   `json:"score"`
	Acknowledged   bool      `json:"acknowledged"`
	CreatedAt      time.Time `json:"created_at"`
}
