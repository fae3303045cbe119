package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cinenotify/notification-service/internal/model"
)

// newEpisodeHandler fans a series event out to every subscriber of the
// filmwork, one notification per enabled channel.
type newEpisodeHandler struct {
	*processor
}

func newNewEpisodeHandler(p *processor) Handler {
	return &newEpisodeHandler{p}
}

// ProcessEvent enriches the event once (episode metadata, subscriber list),
// then per subscriber computes a nighttime-adjusted send time shared by all
// of that subscriber's notifications. Any upstream or persistence failure
// aborts the whole event; already-created notifications are not rolled back,
// so redelivery may duplicate them (at-least-once).
func (h *newEpisodeHandler) ProcessEvent(ctx context.Context, event model.Event) error {
	var data model.NewEpisodeData
	if err := h.parseData(event, &data); err != nil {
		return err
	}

	subscribers, err := h.clients.GetSubscribers(ctx, data.FilmworkID)
	if err != nil {
		return err
	}

	episode, err := h.clients.GetEpisodeInfo(ctx, data.FilmworkID, data.EpisodeID)
	if err != nil {
		return err
	}

	for _, userID := range subscribers {
		profile, err := h.clients.GetUserProfile(ctx, userID)
		if err != nil {
			return err
		}

		sendDate, err := h.sendTime.Calculate(profile.Timezone, event.SendDate)
		if err != nil {
			return err
		}

		templateCtx := map[string]string{
			"fullname":     profile.Fullname,
			"series_name":  episode.SeriesName,
			"episode_name": episode.EpisodeName,
			"url":          episode.URL,
		}

		if profile.ChannelEnabled(model.ChannelEmail) {
			message, err := h.renderer.Render(event.Type, model.ChannelEmail, templateCtx)
			if err != nil {
				return err
			}

			sendData, err := json.Marshal(model.EmailData{
				Email:   profile.Email,
				Subject: fmt.Sprintf("%s: a new episode is out!", episode.SeriesName),
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

			sendData, err := json.Marshal(model.WebsocketData{UserID: userID})
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
	}

	return nil
}
