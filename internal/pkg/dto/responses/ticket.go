package responses

import "time"

type Ticket struct {
	TicketID  string    `json:"ticket_id"`
	PatientID string    `json:"patient_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
