package requests

type AcknowledgeAlert struct {
	PsychologistID string `json:"psychologist_id" validate:"required"`
}
