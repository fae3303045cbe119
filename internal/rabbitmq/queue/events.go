// Package queue declares the durable RabbitMQ queues of the pipeline and
// wraps publishing and consumption for both of them.
package queue

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/cinenotify/notification-service/internal/config"
)

// RetryCountHeader counts how many times an event went through the retry
// queue. The worker dead-letters the message once the count is exhausted.
const RetryCountHeader = "x-retry-count"

const (
	retrySuffix = "-retry"
	dlqSuffix   = "-dlq"

	// how long a failed event parks in the retry queue before coming back
	retryTTLMs = int32(5000)
)

// EventQueue carries raw domain events from producers to the event worker.
// Failed events cycle through a TTL retry queue and finally land in a DLQ,
// so one poison message cannot wedge the consumer.
type EventQueue struct {
	ch         *rabbitmq.Channel
	publisher  *rabbitmq.Publisher
	queueName  string
	retryQueue string
	routingKey string
}

// NewEventQueue declares the durable events queue together with its retry
// queue and DLQ, and binds the events queue to the pipeline exchange.
func NewEventQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlqName := cfg.EventsQueue + dlqSuffix
	retryName := cfg.EventsQueue + retrySuffix

	_, err := qm.DeclareQueue(dlqName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare events DLQ: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.EventsQueue,
		"x-message-ttl":             retryTTLMs,
	}

	_, err = qm.DeclareQueue(retryName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare events retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}

	q, err := qm.DeclareQueue(cfg.EventsQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare events queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.EventsRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the events queue: %w", err)
	}

	return &EventQueue{
		ch:         ch,
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		queueName:  q.Name,
		retryQueue: retryName,
		routingKey: cfg.EventsRoutingKey,
	}, nil
}

// Publish puts a raw event body onto the events queue.
func (q *EventQueue) Publish(body []byte, strategy retry.Strategy) error {
	return q.publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Retry parks the event in the retry queue; after the queue TTL it is
// dead-lettered back onto the events queue with the given attempt count.
func (q *EventQueue) Retry(ctx context.Context, body []byte, attempt int32) error {
	return q.ch.PublishWithContext(ctx, "", q.retryQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Headers:     amqp.Table{RetryCountHeader: attempt},
	})
}

// Consume returns a delivery channel with manual acknowledgement and a
// prefetch of one, so a message stays unacked until the event worker has
// fully processed it. Crash before ack causes redelivery; a nack without
// requeue dead-letters the message to the DLQ.
func (q *EventQueue) Consume() (<-chan amqp.Delivery, error) {
	if err := q.ch.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := q.ch.Consume(q.queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume events queue: %w", err)
	}

	return deliveries, nil
}
