package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/cinenotify/notification-service/internal/mocks/worker"
	"github.com/cinenotify/notification-service/internal/model"
)

func setupScheduler(t *testing.T) (*Scheduler, *mocks.MockdueClaimer, *mocks.MocknotificationPublisher) {
	ctrl := gomock.NewController(t)

	repoMock := mocks.NewMockdueClaimer(ctrl)
	queueMock := mocks.NewMocknotificationPublisher(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewScheduler(repoMock, queueMock, 10*time.Second, 100, strategy)

	return s, repoMock, queueMock
}

func TestScheduler_PromoteDue(t *testing.T) {
	s, repoMock, queueMock := setupScheduler(t)

	first := model.Notification{
		ID:      uuid.New(),
		Message: "first",
		Channel: model.ChannelEmail,
		Data:    []byte(`{"email":"a@example.com"}`),
	}
	second := model.Notification{
		ID:      uuid.New(),
		Message: "second",
		Channel: model.ChannelWebsocket,
		Data:    []byte(`{"user_id":"00000000-0000-0000-0000-000000000001"}`),
	}

	repoMock.EXPECT().ClaimDue(gomock.Any(), 100).Return([]model.Notification{first, second}, nil)

	var published []model.QueueMessage
	queueMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(msg model.QueueMessage, _ retry.Strategy) error {
			published = append(published, msg)
			return nil
		}).
		Times(2)

	s.promoteDue(context.Background())

	assert.Len(t, published, 2)
	assert.Equal(t, first.ID, published[0].NotificationID)
	assert.Equal(t, second.ID, published[1].NotificationID)
}

func TestScheduler_PublishFailureReleasesClaim(t *testing.T) {
	s, repoMock, queueMock := setupScheduler(t)

	broken := model.Notification{ID: uuid.New(), Message: "broken", Channel: model.ChannelEmail}
	fine := model.Notification{ID: uuid.New(), Message: "fine", Channel: model.ChannelEmail}

	repoMock.EXPECT().ClaimDue(gomock.Any(), 100).Return([]model.Notification{broken, fine}, nil)

	queueMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(msg model.QueueMessage, _ retry.Strategy) error {
			if msg.NotificationID == broken.ID {
				return errors.New("broker unavailable")
			}
			return nil
		}).
		Times(2)

	// the failed claim goes back to unsent so the next poll retries it
	repoMock.EXPECT().ReleaseClaim(gomock.Any(), broken.ID).Return(nil)

	s.promoteDue(context.Background())
}

func TestScheduler_ClaimFailure(t *testing.T) {
	s, repoMock, _ := setupScheduler(t)

	repoMock.EXPECT().ClaimDue(gomock.Any(), 100).Return(nil, errors.New("db down"))

	s.promoteDue(context.Background())
}

func TestScheduler_Run_StopsOnContextCancel(t *testing.T) {
	s, repoMock, _ := setupScheduler(t)

	repoMock.EXPECT().ClaimDue(gomock.Any(), 100).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
}
