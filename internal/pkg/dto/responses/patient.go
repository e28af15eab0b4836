package responses

type Patient struct {
	PatientID      string `json:"patient_id"`
	FiscalCode     string `json:"fiscal_code"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	PsychologistID string `json:"psychologist_id,omitempty"`
}

type PatientDashboard struct {
	PatientID           string        `json:"patient_id"`
	SubmissionCount     int64         `json:"submission_count"`
	JournalCount        int64         `json:"journal_count"`
	MoodEntryCount      int64         `json:"mood_entry_count"`
	UnreadNotifications int64         `json:"unread_notifications"`
	ScoreRecord         *PatientScore `json:"score_record,omitempty"`
}

type PatientScore struct {
	PatientID        string  `json:"patient_id"`
	LastScore        float64 `json:"last_score"`
	LastSubmissionID string  `json:"last_submission_id"`
	SubmissionCount  int     `json:"submission_count"`
	AverageScore     float64 `json:"average_score"`
}
