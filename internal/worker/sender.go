package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/model"
)

//go:generate mockgen -source=sender.go -destination=../mocks/worker/sender_mock.go -package=mocks

type sendQueue interface {
	Consume(out chan<- model.QueueMessage, strategy retry.Strategy) error
}

type deliverer interface {
	Deliver(ctx context.Context, msg model.QueueMessage)
}

// Sender consumes the send queue and hands messages to the delivery service
// with a pool of worker goroutines.
type Sender struct {
	queue     sendQueue
	deliverer deliverer
}

func NewSender(q sendQueue, d deliverer) *Sender {
	return &Sender{queue: q, deliverer: d}
}

// Run blocks until ctx is cancelled and every in-flight delivery has
// finished, so shutdown never abandons a half-sent message.
func (s *Sender) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan model.QueueMessage, workerCount*10)

	go func() {
		if err := s.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume send queue")
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("sender-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("sender-%d shutting down", id)
					return
				case msg := <-msgChan:
					s.deliverer.Deliver(ctx, msg)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("sender stopped")
}
