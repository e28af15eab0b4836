package requests

type CreateJournal struct {
	Title     string   `json:"title" validate:"required,max=160"`
	Body      []string `json:"body,omitempty"`
	EntryDate string   `json:"entry_date" validate:"required,datetime=2006-01-02"`
	PatientID string
}

type UpdateJournal struct {
	Title          string   `json:"title" validate:"required,max=160"`
	Body           []string `json:"body,omitempty"`
	EntryDate      string   `json:"entry_date" validate:"required,datetime=2006-01-02"`
	PatientID      string
	JournalEntryID string
}
