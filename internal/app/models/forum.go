package models

// ForumPost starts in the pending moderation state; only approved posts are
// visible to anyone besides the author.
type ForumPost struct {
	ID              string `bson:"_id,omitempty"`
	AuthorID        string `bson:"authorId"`
	Title           string `bson:"title"`
	Body            string `bson:"body"`
	ModerationState string `bson:"moderationState"`
	ModeratedBy     string `bson:"moderatedBy,omitempty"`
	TimeModel       `bson:",inline"`
}

type ForumReply struct {
	ID             string `bson:"_id,omitempty"`
	PostID         string `bson:"postId"`
	PsychologistID string `bson:"psychologistId"`
	Body           string `bson:"body"`
	TimeModel      `bson:",inline"`
}
