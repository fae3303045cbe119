package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/cinenotify/notification-service/internal/mocks/service/delivery"
	"github.com/cinenotify/notification-service/internal/model"
)

type serviceMocks struct {
	repo     *mocks.MockstatusUpdater
	email    *mocks.MockemailSender
	telegram *mocks.MocktextSender
	hub      *mocks.MockwebsocketSender
}

func setupService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:     mocks.NewMockstatusUpdater(ctrl),
		email:    mocks.NewMockemailSender(ctrl),
		telegram: mocks.NewMocktextSender(ctrl),
		hub:      mocks.NewMockwebsocketSender(ctrl),
	}

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewService(m.repo, m.email, m.telegram, m.hub, strategy)

	return s, m
}

func TestDeliver_Email(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	msg := model.QueueMessage{
		Message:        "Hello, Jane!",
		Channel:        model.ChannelEmail,
		Data:           []byte(`{"email":"jane@example.com","subject":"Welcome"}`),
		NotificationID: id,
	}

	m.email.EXPECT().Send("jane@example.com", "Welcome", "Hello, Jane!").Return(nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusSent).Return(nil)

	s.Deliver(context.Background(), msg)
}

func TestDeliver_EmailFailureMarksFailed(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	msg := model.QueueMessage{
		Message:        "Hello, Jane!",
		Channel:        model.ChannelEmail,
		Data:           []byte(`{"email":"jane@example.com","subject":"Welcome"}`),
		NotificationID: id,
	}

	m.email.EXPECT().Send("jane@example.com", "Welcome", "Hello, Jane!").Return(errors.New("smtp down"))
	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusFailed).Return(nil)

	s.Deliver(context.Background(), msg)
}

func TestDeliver_Telegram(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	msg := model.QueueMessage{
		Message:        "Your review got a new like (9/10).",
		Channel:        model.ChannelTelegram,
		Data:           []byte(`{"chat_id":"12345"}`),
		NotificationID: id,
	}

	m.telegram.EXPECT().Send("12345", msg.Message).Return(nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusSent).Return(nil)

	s.Deliver(context.Background(), msg)
}

func TestDeliver_WebsocketDirect(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	userID := uuid.New()
	msg := model.QueueMessage{
		Message:        "The Wire: new episode S01E01 is out!",
		Channel:        model.ChannelWebsocket,
		Data:           []byte(`{"user_id":"` + userID.String() + `"}`),
		NotificationID: id,
	}

	m.hub.EXPECT().Send(userID, msg.Message).Return(nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusSent).Return(nil)

	s.Deliver(context.Background(), msg)
}

func TestDeliver_WebsocketBroadcast(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	msg := model.QueueMessage{
		Message:        "Fresh movies just landed!",
		Channel:        model.ChannelWebsocket,
		Data:           []byte(`{"broadcast":true}`),
		NotificationID: id,
	}

	m.hub.EXPECT().Broadcast(msg.Message).Return(nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusSent).Return(nil)

	s.Deliver(context.Background(), msg)
}

func TestDeliver_UnknownChannelMarksFailed(t *testing.T) {
	s, m := setupService(t)

	id := uuid.New()
	msg := model.QueueMessage{
		Message:        "Hello",
		Channel:        "pigeon",
		Data:           []byte(`{}`),
		NotificationID: id,
	}

	m.repo.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusFailed).Return(nil)

	s.Deliver(context.Background(), msg)
}
