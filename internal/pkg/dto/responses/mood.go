package responses

type MoodEntry struct {
	MoodEntryID string `json:"mood_entry_id"`
	PatientID   string `json:"patient_id"`
	Mood        string `json:"mood"`
	Intensity   int    `json:"intensity"`
	Note        string `json:"note,omitempty"`
	EntryDate   string `json:"entry_date"`
}
