package responses

type JournalEntry struct {
	JournalEntryID string   `json:"journal_entry_id"`
	PatientID      string   `json:"patient_id"`
	Title          string   `json:"title"`
	Body           []string `json:"body,omitempty"`
	EntryDate      string   `json:"entry_date"`
}
