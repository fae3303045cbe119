// Package worker holds the long-running loops of the pipeline: the event
// worker, the scheduler and the sender.
package worker

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/rabbitmq/queue"
	"github.com/cinenotify/notification-service/internal/service/event"
)

// maxDeliveryAttempts bounds how many times a failing event cycles through
// the retry queue before it is dead-lettered.
const maxDeliveryAttempts = 3

//go:generate mockgen -source=eventworker.go -destination=../mocks/worker/eventworker_mock.go -package=mocks

type eventConsumer interface {
	Consume() (<-chan amqp.Delivery, error)
	Retry(ctx context.Context, body []byte, attempt int32) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, body []byte) error
}

// EventWorker consumes raw events one at a time (prefetch 1) and dispatches
// them. A message is acked only after the handler has fully run. Processing
// failures go through the TTL retry queue a bounded number of times and then
// dead-letter, so a poison message never blocks the queue head.
type EventWorker struct {
	queue      eventConsumer
	dispatcher dispatcher
}

func NewEventWorker(q eventConsumer, d dispatcher) *EventWorker {
	return &EventWorker{queue: q, dispatcher: d}
}

// Run consumes deliveries until ctx is cancelled.
func (w *EventWorker) Run(ctx context.Context) error {
	deliveries, err := w.queue.Consume()
	if err != nil {
		return err
	}

	zlog.Logger.Info().Msg("event worker started, waiting for events")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("event worker stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("events delivery channel closed")
			}

			w.handle(ctx, d)
		}
	}
}

func (w *EventWorker) handle(ctx context.Context, d amqp.Delivery) {
	err := w.dispatcher.Dispatch(ctx, d.Body)

	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			zlog.Logger.Error().Err(ackErr).Msg("failed to ack event")
		}
	case errors.Is(err, event.ErrUnknownEventType):
		// permanent: redelivery cannot fix an unknown type, drop it
		zlog.Logger.Error().Err(err).Msg("dropping event")
		if ackErr := d.Ack(false); ackErr != nil {
			zlog.Logger.Error().Err(ackErr).Msg("failed to ack dropped event")
		}
	default:
		w.retry(ctx, d, err)
	}
}

// retry republishes the failed event through the retry queue with a bumped
// attempt counter, or dead-letters it once the attempts are exhausted.
func (w *EventWorker) retry(ctx context.Context, d amqp.Delivery, cause error) {
	attempt := retryCount(d) + 1

	if attempt >= maxDeliveryAttempts {
		zlog.Logger.Error().Err(cause).Int32("attempt", attempt).Msg("event failed too many times, dead-lettering")
		if nackErr := d.Nack(false, false); nackErr != nil {
			zlog.Logger.Error().Err(nackErr).Msg("failed to dead-letter event")
		}
		return
	}

	zlog.Logger.Error().Err(cause).Int32("attempt", attempt).Msg("failed to process event, scheduling retry")

	if pubErr := w.queue.Retry(ctx, d.Body, attempt); pubErr != nil {
		// could not park it in the retry queue, fall back to a plain requeue
		zlog.Logger.Error().Err(pubErr).Msg("failed to publish event to retry queue, requeueing")
		if nackErr := d.Nack(false, true); nackErr != nil {
			zlog.Logger.Error().Err(nackErr).Msg("failed to nack event")
		}
		return
	}

	if ackErr := d.Ack(false); ackErr != nil {
		zlog.Logger.Error().Err(ackErr).Msg("failed to ack retried event")
	}
}

// retryCount reads the attempt counter set by the retry publisher. AMQP
// header numbers come back as different integer widths depending on the
// client, so both are accepted.
func retryCount(d amqp.Delivery) int32 {
	if d.Headers == nil {
		return 0
	}

	switch v := d.Headers[queue.RetryCountHeader].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	default:
		return 0
	}
}
