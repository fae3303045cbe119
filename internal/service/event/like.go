package event

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cinenotify/notification-service/internal/model"
)

// likeHandler notifies a review author about a new like on their review,
// over every channel the author has enabled.
type likeHandler struct {
	*processor
}

func newLikeHandler(p *processor) Handler {
	return &likeHandler{p}
}

func (h *likeHandler) ProcessEvent(ctx context.Context, event model.Event) error {
	var data model.LikeData
	if err := h.parseData(event, &data); err != nil {
		return err
	}

	profile, err := h.clients.GetUserProfile(ctx, data.AuthorID)
	if err != nil {
		return err
	}

	sendDate, err := h.sendTime.Calculate(profile.Timezone, event.SendDate)
	if err != nil {
		return err
	}

	templateCtx := map[string]string{
		"fullname": profile.Fullname,
		"score":    strconv.Itoa(data.Score),
	}

	if profile.ChannelEnabled(model.ChannelEmail) {
		message, err := h.renderer.Render(event.Type, model.ChannelEmail, templateCtx)
		if err != nil {
			return err
		}

		sendData, err := json.Marshal(model.EmailData{
			Email:   profile.Email,
			Subject: "Your review got a new like",
		})
		if err != nil {
			return err
		}

		err = h.createNotification(ctx, model.Notification{
			Message:  message,
			Channel:  model.ChannelEmail,
			SendDate: sendDate,
			Data:     sendData,
		})
		if err != nil {
			return err
		}
	}

	if profile.ChannelEnabled(model.ChannelWebsocket) {
		message, err := h.renderer.Render(event.Type, model.ChannelWebsocket, templateCtx)
		if err != nil {
			return err
		}

		sendData, err := json.Marshal(model.WebsocketData{UserID: data.AuthorID})
		if err != nil {
			return err
		}

		err = h.createNotification(ctx, model.Notification{
			Message:  message,
			Channel:  model.ChannelWebsocket,
			SendDate: sendDate,
			Data:     sendData,
		})
		if err != nil {
			return err
		}
	}

	if profile.ChannelEnabled(model.ChannelTelegram) && profile.TelegramChatID != "" {
		message, err := h.renderer.Render(event.Type, model.ChannelTelegram, templateCtx)
		if err != nil {
			return err
		}

		sendData, err := json.Marshal(model.TelegramData{ChatID: profile.TelegramChatID})
		if err != nil {
			return err
		}

		err = h.createNotification(ctx, model.Notification{
			Message:  message,
			Channel:  model.ChannelTelegram,
			SendDate: sendDate,
			Data:     sendData,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
