package requests

type CreateMoodEntry struct {
	Mood      string `json:"mood" validate:"required,mood_label"`
	Intensity int    `json:"intensity" validate:"required,gte=1,lte=5"`
	Note      string `json:"note,omitempty" validate:"omitempty,max=500"`
	EntryDate string `json:"entry_date" validate:"required,datetime=2006-01-02"`
	PatientID string
}

type UpdateMoodEntry struct {
	Mood        string `json:"mood" validate:"required,mood_label"`
	Intensity   int    `json:"intensity" validate:"required,gte=1,lte=5"`
	Note        string `json:"note,omitempty" validate:"omitempty,max=500"`
	EntryDate   string `json:"entry_date" validate:"required,datetime=2006-01-02"`
	PatientID   string
	MoodEntryID string
}
