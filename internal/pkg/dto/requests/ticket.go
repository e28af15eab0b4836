package requests

type CreateTicket struct {
	PatientID string `json:"patient_id" validate:"required"`
	Subject   string `json:"subject" validate:"required,max=160"`
	Body      string `json:"body" validate:"required"`
}

type UpdateTicket struct {
	AdminID  string `json:"admin_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=open in_progress closed"`
	Response string `json:"response,omitempty"`
	TicketID string
}
