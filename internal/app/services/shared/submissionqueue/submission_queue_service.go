package submissionqueue

import (
	"context"
	"fmt"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "submission_events_queue"
	DeadLetterQueueName = "submission_events_dlq"
)

// SubmissionCompletedMessage is the payload published after a questionnaire
// submission has been persisted. Consumers derive all downstream effects
// (score aggregation, alerts, badges) from it.
type SubmissionCompletedMessage struct {
	ID           string  `json:"id"`
	SubmissionID string  `json:"submission_id"`
	PatientID    string  `json:"patient_id"`
	TypeName     string  `json:"type_name"`
	Score        float64 `json:"score"`
	FailedCount  int     `json:"failed_count"`
}

// Service manages the RabbitMQ queues carrying submission events.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService opens a channel, declares the durable queues, enables publisher
// confirms, and sets QoS for batch consumption.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// QueuedItem is a fetched delivery with its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     SubmissionCompletedMessage
}

// Enqueue publishes a message to the standard queue with persistence and
// waits for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, message SubmissionCompletedMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmissionQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, message.SubmissionID),
	)
	return s.publish(ctx, StandardQueueName, message)
}

// Reenqueue publishes the (possibly modified) message back to the tail of
// the standard queue.
func (s *Service) Reenqueue(ctx context.Context, message SubmissionCompletedMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmissionQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, message.SubmissionID),
		zap.Int(constvars.LoggingFailedCountKey, message.FailedCount),
	)
	return s.publish(ctx, StandardQueueName, message)
}

// EnqueueToDeadQueue moves the message to the DLQ once it has exceeded its
// retry budget.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message SubmissionCompletedMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmissionQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, message.SubmissionID),
		zap.Int(constvars.LoggingFailedCountKey, message.FailedCount),
	)
	return s.publish(ctx, DeadLetterQueueName, message)
}

// FetchN retrieves up to max messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmissionQueue.FetchN called", zap.String(constvars.LoggingRequestIDKey, requestID))

	n := max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQFetchMessage(err)
		}
		if !ok {
			break
		}
		var payload SubmissionCompletedMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Invalid payloads go straight to the DLQ to avoid a poison loop.
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	return items, nil
}

// AckMessage acknowledges a message by delivery tag.
func (s *Service) AckMessage(ctx context.Context, deliveryTag uint64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmissionQueue.AckMessage called", zap.String(constvars.LoggingRequestIDKey, requestID))
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQFetchMessage(err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, queue string, message SubmissionCompletedMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
