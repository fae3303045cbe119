package event

import (
	"context"
	"encoding/json"

	"github.com/cinenotify/notification-service/internal/model"
)

// newUserHandler confirms a fresh registration with a single email.
type newUserHandler struct {
	*processor
}

func newNewUserHandler(p *processor) Handler {
	return &newUserHandler{p}
}

func (h *newUserHandler) ProcessEvent(ctx context.Context, event model.Event) error {
	var data model.NewUserData
	if err := h.parseData(event, &data); err != nil {
		return err
	}

	profile, err := h.clients.GetUserProfile(ctx, data.UserID)
	if err != nil {
		return err
	}

	message, err := h.renderer.Render(event.Type, model.ChannelEmail, map[string]string{
		"fullname": profile.Fullname,
		"url":      data.URL,
	})
	if err != nil {
		return err
	}

	sendData, err := json.Marshal(model.EmailData{
		Email:   profile.Email,
		Subject: "Confirm your registration at the online cinema",
	})
	if err != nil {
		return err
	}

	return h.createNotification(ctx, model.Notification{
		Message:  message,
		Channel:  model.ChannelEmail,
		SendDate: event.SendDate,
		Data:     sendData,
	})
}
