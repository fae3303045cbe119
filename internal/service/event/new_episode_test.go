package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/cinenotify/notification-service/internal/mocks/service/event"
	"github.com/cinenotify/notification-service/internal/model"
)

func setupProcessor(t *testing.T) (*processor, dispatcherMocks) {
	ctrl := gomock.NewController(t)

	m := dispatcherMocks{
		events:        mocks.NewMockeventRepository(ctrl),
		notifications: mocks.NewMocknotificationRepository(ctrl),
		queue:         mocks.NewMocknotificationPublisher(ctrl),
		renderer:      mocks.NewMockrenderer(ctrl),
		sendTime:      mocks.NewMocksendTimeCalculator(ctrl),
		clients:       mocks.NewMockEnrichClients(ctrl),
	}

	p := &processor{
		events:        m.events,
		notifications: m.notifications,
		queue:         m.queue,
		renderer:      m.renderer,
		sendTime:      m.sendTime,
		clients:       m.clients,
		validate:      validator.New(),
		strategy:      retry.Strategy{Attempts: 1, Delay: time.Millisecond},
	}

	return p, m
}

func newEpisodeEvent(t *testing.T, filmworkID, episodeID uuid.UUID) model.Event {
	data, err := json.Marshal(model.NewEpisodeData{
		FilmworkID: filmworkID,
		EpisodeID:  episodeID,
	})
	require.NoError(t, err)

	return model.Event{
		ID:        uuid.New(),
		Type:      model.EventSeries,
		EventDate: time.Now().UTC(),
		Data:      data,
	}
}

func TestNewEpisode_FanOut(t *testing.T) {
	p, m := setupProcessor(t)
	h := newNewEpisodeHandler(p)

	filmworkID := uuid.New()
	episodeID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	event := newEpisodeEvent(t, filmworkID, episodeID)

	episode := model.EpisodeInfo{
		SeriesName:  "The Wire",
		EpisodeName: "S01E01",
		URL:         "https://cinema.example/watch",
	}

	aliceProfile := model.UserProfile{
		Email:                "alice@example.com",
		Fullname:             "Alice",
		NotificationSettings: map[string]bool{model.ChannelEmail: true},
		Timezone:             "UTC",
	}
	bobProfile := model.UserProfile{
		Email:                "bob@example.com",
		Fullname:             "Bob",
		NotificationSettings: map[string]bool{model.ChannelEmail: true, model.ChannelWebsocket: true},
		Timezone:             "Europe/Moscow",
	}

	deferred := time.Date(2026, 8, 29, 4, 0, 0, 0, time.UTC)

	m.clients.EXPECT().GetSubscribers(gomock.Any(), filmworkID).Return([]uuid.UUID{alice, bob}, nil)
	m.clients.EXPECT().GetEpisodeInfo(gomock.Any(), filmworkID, episodeID).Return(episode, nil)
	m.clients.EXPECT().GetUserProfile(gomock.Any(), alice).Return(aliceProfile, nil)
	m.clients.EXPECT().GetUserProfile(gomock.Any(), bob).Return(bobProfile, nil)

	m.sendTime.EXPECT().Calculate("UTC", nil).Return(&deferred, nil)
	m.sendTime.EXPECT().Calculate("Europe/Moscow", nil).Return(&deferred, nil)

	m.renderer.EXPECT().
		Render(model.EventSeries, model.ChannelEmail, gomock.Any()).
		Return("new episode email", nil).
		Times(2)
	m.renderer.EXPECT().
		Render(model.EventSeries, model.ChannelWebsocket, gomock.Any()).
		Return("new episode ping", nil)

	var saved []model.Notification
	m.notifications.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			saved = append(saved, n)
			return uuid.New(), nil
		}).
		Times(3)

	// deferred send date, so nothing is published directly

	err := h.ProcessEvent(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, saved, 3)

	channels := map[string]int{}
	for _, n := range saved {
		channels[n.Channel]++
		require.NotNil(t, n.SendDate)
		assert.Equal(t, deferred, *n.SendDate)
	}
	assert.Equal(t, 2, channels[model.ChannelEmail])
	assert.Equal(t, 1, channels[model.ChannelWebsocket])
}

func TestNewEpisode_InvalidPayload(t *testing.T) {
	p, _ := setupProcessor(t)
	h := newNewEpisodeHandler(p)

	event := model.Event{
		ID:        uuid.New(),
		Type:      model.EventSeries,
		EventDate: time.Now().UTC(),
		Data:      json.RawMessage(`{}`),
	}

	err := h.ProcessEvent(context.Background(), event)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestNewEpisode_SubscriberFetchFails(t *testing.T) {
	p, m := setupProcessor(t)
	h := newNewEpisodeHandler(p)

	filmworkID := uuid.New()
	event := newEpisodeEvent(t, filmworkID, uuid.New())

	upstreamErr := errors.New("ugc service down")
	m.clients.EXPECT().GetSubscribers(gomock.Any(), filmworkID).Return(nil, upstreamErr)

	err := h.ProcessEvent(context.Background(), event)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestNewEpisode_MidFanOutFailureAborts(t *testing.T) {
	p, m := setupProcessor(t)
	h := newNewEpisodeHandler(p)

	filmworkID := uuid.New()
	episodeID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	event := newEpisodeEvent(t, filmworkID, episodeID)

	aliceProfile := model.UserProfile{
		Email:                "alice@example.com",
		Fullname:             "Alice",
		NotificationSettings: map[string]bool{model.ChannelEmail: true},
		Timezone:             "UTC",
	}

	deferred := time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)

	m.clients.EXPECT().GetSubscribers(gomock.Any(), filmworkID).Return([]uuid.UUID{alice, bob}, nil)
	m.clients.EXPECT().GetEpisodeInfo(gomock.Any(), filmworkID, episodeID).Return(model.EpisodeInfo{SeriesName: "The Wire"}, nil)
	m.clients.EXPECT().GetUserProfile(gomock.Any(), alice).Return(aliceProfile, nil)
	m.clients.EXPECT().GetUserProfile(gomock.Any(), bob).Return(model.UserProfile{}, errors.New("profile service down"))

	m.sendTime.EXPECT().Calculate("UTC", nil).Return(&deferred, nil)
	m.renderer.EXPECT().Render(model.EventSeries, model.ChannelEmail, gomock.Any()).Return("msg", nil)

	// Alice's notification lands before Bob's profile fetch fails; it is not
	// rolled back, redelivery may duplicate it.
	m.notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	err := h.ProcessEvent(context.Background(), event)
	assert.Error(t, err)
}
