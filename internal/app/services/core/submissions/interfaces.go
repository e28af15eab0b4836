package submissions

import (
	"context"
	"serenia-service/internal/app/services/shared/submissionqueue"
)

// EventPublisher hands a completed submission to the asynchronous
// side-effect pipeline.
type EventPublisher interface {
	Enqueue(ctx context.Context, message submissionqueue.SubmissionCompletedMessage) error
}
