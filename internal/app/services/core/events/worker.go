package events

import (
	"context"
	"serenia-service/internal/app/config"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/services/shared/submissionqueue"
	"serenia-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Worker drains the submission event queue on a ticker and runs the
// post-submission side effects with at-least-once semantics. Only one
// instance processes a tick; the others lose the Redis lock and skip.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	locker contracts.LockerService
	queue  *submissionqueue.Service
	scores contracts.ScoreService
	alerts contracts.AlertService
	badges contracts.BadgeService
	stop   chan struct{}
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	queue *submissionqueue.Service,
	scoreService contracts.ScoreService,
	alertService contracts.AlertService,
	badgeService contracts.BadgeService,
) *Worker {
	return &Worker{
		log:    log,
		cfg:    cfg,
		locker: lockerSvc,
		queue:  queue,
		scores: scoreService,
		alerts: alertService,
		badges: badgeService,
		stop:   make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(10 * time.Second)
	stopped := make(chan struct{})

	w.log.Info("submission events worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	w.log.Info("events.worker.runOnce tick",
		zap.Time("now", now))

	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyEventsWorkerLock, 30*time.Second)
	if err != nil {
		w.log.Info("worker lock attempt failed",
			zap.Error(err))
		return
	}
	if !acquired {
		w.log.Warn("worker lock not acquired; another instance is running")
		return
	}

	w.log.Info("worker lock acquired")
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyEventsWorkerLock, lockVal); err != nil {
			w.log.Error("worker unlock failed", zap.Error(err))
		}
	}()

	max := w.cfg.App.EventQueueMaxBatch
	if max <= 0 {
		max = 1
	}
	items, err := w.queue.FetchN(ctx, max)
	if err != nil {
		w.log.Info("queue.FetchN error", zap.Error(err))
		return
	}

	w.log.Info("queue.FetchN success", zap.Int("fetched_count", len(items)))

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

// processItem runs the side effects in order: aggregate score, clinical
// alert, badges. Each step is idempotent, so a partial failure followed by
// a retry replays the earlier steps safely.
func (w *Worker) processItem(ctx context.Context, item submissionqueue.QueuedItem) {
	msg := item.Message

	w.log.Info("processing submission event",
		zap.String("message_id", msg.ID),
		zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID),
		zap.String("patient_id", msg.PatientID),
		zap.Int("failed_count", msg.FailedCount))

	if err := w.scores.UpdatePatientScore(ctx, msg.PatientID, msg.SubmissionID); err != nil {
		w.log.Info("score aggregation failed",
			zap.String("message_id", msg.ID),
			zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}

	if err := w.alerts.CreateAlertIfNeeded(ctx, msg.PatientID, msg.Score); err != nil {
		w.log.Info("clinical alert step failed",
			zap.String("message_id", msg.ID),
			zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}

	if err := w.badges.CheckAndAwardBadges(ctx, msg.PatientID); err != nil {
		w.log.Info("badge evaluation failed",
			zap.String("message_id", msg.ID),
			zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}

	if err := w.queue.AckMessage(ctx, item.DeliveryTag); err != nil {
		w.log.Info("ack failed after success",
			zap.String("message_id", msg.ID),
			zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID),
			zap.Error(err))
		return
	}
	w.log.Info("submission event processed; removed from queue",
		zap.String("message_id", msg.ID),
		zap.String(constvars.LoggingSubmissionIDKey, msg.SubmissionID))
}

func (w *Worker) requeueOnError(ctx context.Context, item submissionqueue.QueuedItem, msg submissionqueue.SubmissionCompletedMessage) {
	msg.FailedCount++
	if msg.FailedCount >= w.cfg.App.EventQueueMaxFailedCount {
		if err := w.queue.EnqueueToDeadQueue(ctx, msg); err != nil {
			w.log.Info("enqueue to DLQ failed",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			return
		}
		_ = w.queue.AckMessage(ctx, item.DeliveryTag)
		w.log.Info("moved submission event to DLQ",
			zap.String("message_id", msg.ID),
			zap.Int("failed_count", msg.FailedCount))
		return
	}
	if err := w.queue.Reenqueue(ctx, msg); err != nil {
		w.log.Info("reenqueue failed",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}
	_ = w.queue.AckMessage(ctx, item.DeliveryTag)
	w.log.Info("retryable failure; incremented failed count and requeued",
		zap.String("message_id", msg.ID),
		zap.Int("failed_count", msg.FailedCount))
}
