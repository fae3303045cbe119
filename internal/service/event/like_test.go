package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinenotify/notification-service/internal/model"
)

func likeEvent(t *testing.T, author uuid.UUID, score int) model.Event {
	data, err := json.Marshal(model.LikeData{
		AuthorID: author,
		FilmID:   uuid.New(),
		ReviewID: uuid.New(),
		UserID:   uuid.New(),
		Score:    score,
	})
	require.NoError(t, err)

	return model.Event{
		ID:        uuid.New(),
		Type:      model.EventLike,
		EventDate: time.Now().UTC(),
		Data:      data,
	}
}

func TestLike_NotifiesAuthorOnEnabledChannels(t *testing.T) {
	p, m := setupProcessor(t)
	h := newLikeHandler(p)

	author := uuid.New()
	event := likeEvent(t, author, 9)

	profile := model.UserProfile{
		Email:                "author@example.com",
		Fullname:             "Jane Doe",
		NotificationSettings: map[string]bool{model.ChannelEmail: true, model.ChannelWebsocket: true},
		Timezone:             "UTC",
	}

	m.clients.EXPECT().GetUserProfile(gomock.Any(), author).Return(profile, nil)

	// daytime, so the notifications go out immediately
	m.sendTime.EXPECT().Calculate("UTC", nil).Return(nil, nil)

	m.renderer.EXPECT().
		Render(model.EventLike, model.ChannelEmail, map[string]string{"fullname": "Jane Doe", "score": "9"}).
		Return("like email", nil)
	m.renderer.EXPECT().
		Render(model.EventLike, model.ChannelWebsocket, map[string]string{"fullname": "Jane Doe", "score": "9"}).
		Return("like ping", nil)

	m.notifications.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Return(uuid.New(), nil).
		Times(2)
	m.queue.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	err := h.ProcessEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestLike_TelegramGoesToProfileChatID(t *testing.T) {
	p, m := setupProcessor(t)
	h := newLikeHandler(p)

	author := uuid.New()
	event := likeEvent(t, author, 8)

	profile := model.UserProfile{
		Fullname:             "Jane Doe",
		TelegramChatID:       "1337",
		NotificationSettings: map[string]bool{model.ChannelTelegram: true},
		Timezone:             "UTC",
	}

	m.clients.EXPECT().GetUserProfile(gomock.Any(), author).Return(profile, nil)
	m.sendTime.EXPECT().Calculate("UTC", nil).Return(nil, nil)

	m.renderer.EXPECT().
		Render(model.EventLike, model.ChannelTelegram, map[string]string{"fullname": "Jane Doe", "score": "8"}).
		Return("like tg", nil)

	m.notifications.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.ChannelTelegram, n.Channel)

			var data model.TelegramData
			require.NoError(t, json.Unmarshal(n.Data, &data))
			assert.Equal(t, "1337", data.ChatID)

			return uuid.New(), nil
		})
	m.queue.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	err := h.ProcessEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestLike_TelegramSkippedWithoutChatID(t *testing.T) {
	p, m := setupProcessor(t)
	h := newLikeHandler(p)

	author := uuid.New()
	event := likeEvent(t, author, 6)

	// opted in but never linked a chat: nothing to deliver to
	profile := model.UserProfile{
		Fullname:             "Jane Doe",
		NotificationSettings: map[string]bool{model.ChannelTelegram: true},
		Timezone:             "UTC",
	}

	m.clients.EXPECT().GetUserProfile(gomock.Any(), author).Return(profile, nil)
	m.sendTime.EXPECT().Calculate("UTC", nil).Return(nil, nil)

	err := h.ProcessEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestLike_DisabledChannelsSkipped(t *testing.T) {
	p, m := setupProcessor(t)
	h := newLikeHandler(p)

	author := uuid.New()
	event := likeEvent(t, author, 7)

	// everything opted out: nothing rendered, nothing saved
	profile := model.UserProfile{
		Email:    "author@example.com",
		Fullname: "Jane Doe",
		Timezone: "UTC",
	}

	m.clients.EXPECT().GetUserProfile(gomock.Any(), author).Return(profile, nil)
	m.sendTime.EXPECT().Calculate("UTC", nil).Return(nil, nil)

	err := h.ProcessEvent(context.Background(), event)
	assert.NoError(t, err)
}
