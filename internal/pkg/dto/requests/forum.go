package requests

type CreateForumPost struct {
	AuthorID string `json:"author_id" validate:"required"`
	Title    string `json:"title" validate:"required,max=160"`
	Body     string `json:"body" validate:"required"`
}

type ModerateForumPost struct {
	ModeratorID string `json:"moderator_id" validate:"required"`
	Decision    string `json:"decision" validate:"required,oneof=approved rejected"`
	PostID      string
}

type CreateForumReply struct {
	PsychologistID string `json:"psychologist_id" validate:"required"`
	Body           string `json:"body" validate:"required"`
	PostID         string
}
