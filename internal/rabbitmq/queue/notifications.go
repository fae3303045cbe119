package queue

import (
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/config"
	"github.com/cinenotify/notification-service/internal/model"
)

// NotificationQueue carries send-ready notification projections to the sender.
type NotificationQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	routingKey string
}

// NewNotificationQueue declares the durable notifications queue and binds it
// to the pipeline exchange.
func NewNotificationQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(cfg.NotificationsQueue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare notifications queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.NotificationsRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the notifications queue: %w", err)
	}

	return &NotificationQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name)),
		routingKey: cfg.NotificationsRoutingKey,
	}, nil
}

// Publish puts a notification projection onto the send queue.
func (q *NotificationQueue) Publish(msg model.QueueMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes send-queue messages into out until the consumer stops.
func (q *NotificationQueue) Consume(out chan<- model.QueueMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg model.QueueMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			out <- msg
		}
	}()

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}
