package event

import (
	"context"
	"encoding/json"

	"github.com/cinenotify/notification-service/internal/model"
)

// newsHandler turns a news event into a single broadcast websocket
// notification. There is no per-user enrichment: a broadcast has no user
// timezone, so the event's send date is used as-is.
type newsHandler struct {
	*processor
}

func newNewsHandler(p *processor) Handler {
	return &newsHandler{p}
}

func (h *newsHandler) ProcessEvent(ctx context.Context, event model.Event) error {
	var data model.NewsData
	if err := h.parseData(event, &data); err != nil {
		return err
	}

	message, err := h.renderer.Render(event.Type, model.ChannelWebsocket, map[string]string{
		"message": data.Message,
	})
	if err != nil {
		return err
	}

	sendData, err := json.Marshal(model.WebsocketData{Broadcast: true})
	if err != nil {
		return err
	}

	return h.createNotification(ctx, model.Notification{
		Message:  message,
		Channel:  model.ChannelWebsocket,
		SendDate: event.SendDate,
		Data:     sendData,
	})
}
