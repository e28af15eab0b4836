package responses

import "time"

type Badge struct {
	BadgeID   string    `json:"badge_id"`
	PatientID string    `json:"patient_id"`
	Code      string    `json:"code"`
	AwardedAt time.Time `json:"awarded_at"`
}
