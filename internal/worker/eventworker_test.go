package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	mocks "github.com/cinenotify/notification-service/internal/mocks/worker"
	"github.com/cinenotify/notification-service/internal/rabbitmq/queue"
	"github.com/cinenotify/notification-service/internal/service/event"
)

type fakeAcknowledger struct {
	acks     int
	nacks    int
	requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acks++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacks++
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func TestEventWorker_Handle_AcksOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(mocks.NewMockeventConsumer(ctrl), dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"news"}`)

	dispatcherMock.EXPECT().Dispatch(gomock.Any(), body).Return(nil)

	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

	assert.Equal(t, 1, ack.acks)
	assert.Equal(t, 0, ack.nacks)
}

func TestEventWorker_Handle_DropsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(mocks.NewMockeventConsumer(ctrl), dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"review_reply"}`)

	dispatcherMock.EXPECT().
		Dispatch(gomock.Any(), body).
		Return(fmt.Errorf("%w: %q", event.ErrUnknownEventType, "review_reply"))

	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

	// permanent failure: acked so the broker never redelivers it
	assert.Equal(t, 1, ack.acks)
	assert.Equal(t, 0, ack.nacks)
}

func TestEventWorker_Handle_SchedulesRetryOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(consumerMock, dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"series"}`)

	dispatcherMock.EXPECT().Dispatch(gomock.Any(), body).Return(errors.New("upstream down"))
	consumerMock.EXPECT().Retry(gomock.Any(), body, int32(1)).Return(nil)

	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

	// original delivery is acked; the retry queue now owns the message
	assert.Equal(t, 1, ack.acks)
	assert.Equal(t, 0, ack.nacks)
}

func TestEventWorker_Handle_BumpsRetryCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(consumerMock, dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"series"}`)

	dispatcherMock.EXPECT().Dispatch(gomock.Any(), body).Return(errors.New("upstream down"))
	consumerMock.EXPECT().Retry(gomock.Any(), body, int32(2)).Return(nil)

	w.handle(context.Background(), amqp.Delivery{
		Acknowledger: ack,
		Body:         body,
		// brokers hand header numbers back as int64
		Headers: amqp.Table{queue.RetryCountHeader: int64(1)},
	})

	assert.Equal(t, 1, ack.acks)
	assert.Equal(t, 0, ack.nacks)
}

func TestEventWorker_Handle_DeadLettersAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(consumerMock, dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"like","data":"not-json"}`)

	dispatcherMock.EXPECT().
		Dispatch(gomock.Any(), body).
		Return(fmt.Errorf("%w: bad payload", event.ErrInvalidEvent))

	w.handle(context.Background(), amqp.Delivery{
		Acknowledger: ack,
		Body:         body,
		Headers:      amqp.Table{queue.RetryCountHeader: int32(maxDeliveryAttempts - 1)},
	})

	// nack without requeue dead-letters the message instead of spinning it
	// at the queue head forever
	assert.Equal(t, 0, ack.acks)
	assert.Equal(t, 1, ack.nacks)
	assert.False(t, ack.requeued)
}

func TestEventWorker_Handle_RequeuesWhenRetryPublishFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	w := NewEventWorker(consumerMock, dispatcherMock)

	ack := &fakeAcknowledger{}
	body := []byte(`{"type":"series"}`)

	dispatcherMock.EXPECT().Dispatch(gomock.Any(), body).Return(errors.New("upstream down"))
	consumerMock.EXPECT().Retry(gomock.Any(), body, int32(1)).Return(errors.New("channel closed"))

	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

	assert.Equal(t, 0, ack.acks)
	assert.Equal(t, 1, ack.nacks)
	assert.True(t, ack.requeued)
}

func TestEventWorker_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	w := NewEventWorker(consumerMock, mocks.NewMockdispatcher(ctrl))

	deliveries := make(chan amqp.Delivery)
	consumerMock.EXPECT().Consume().Return((<-chan amqp.Delivery)(deliveries), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Run(ctx)
	assert.NoError(t, err)
}

func TestEventWorker_Run_ConsumeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockeventConsumer(ctrl)
	w := NewEventWorker(consumerMock, mocks.NewMockdispatcher(ctrl))

	consumerMock.EXPECT().Consume().Return(nil, errors.New("channel closed"))

	err := w.Run(context.Background())
	assert.Error(t, err)
}
