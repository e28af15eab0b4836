package responses

import "time"

type ForumPost struct {
	PostID          string       `json:"post_id"`
	AuthorID        string       `json:"author_id"`
	Title           string       `json:"title"`
	Body            string       `json:"body"`
	ModerationState string       `json:"moderation_state"`
	CreatedAt       time.Time    `json:"created_at"`
	Replies         []ForumReply `json:"replies,omitempty"`
}

type ForumReply struct {
	ReplyID        string    `json:"reply_id"`
	PostID         string    `json:"post_id"`
	PsychologistID string    `json:"psychologist_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}
