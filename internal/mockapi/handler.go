// Package mockapi imitates the upstream profile, content and UGC services
// with fixed payloads, for local runs of the pipeline.
package mockapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/cinenotify/notification-service/internal/model"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetProfile mimics the user profile service.
func (h *Handler) GetProfile(c *ginext.Context) {
	c.JSON(http.StatusOK, model.UserProfile{
		Email:          "mail@mail.some",
		Fullname:       "Ivan Petrov",
		TelegramChatID: "1000001",
		NotificationSettings: map[string]bool{
			model.ChannelEmail:     true,
			model.ChannelWebsocket: true,
			model.ChannelTelegram:  true,
		},
		Timezone: "Europe/Moscow",
	})
}

// GetEpisode mimics the content service.
func (h *Handler) GetEpisode(c *ginext.Context) {
	c.JSON(http.StatusOK, model.EpisodeInfo{
		SeriesName:  "series name",
		EpisodeName: "episode name",
		URL:         "episode link",
	})
}

// GetSubscribers mimics the UGC service with two random subscribers.
func (h *Handler) GetSubscribers(c *ginext.Context) {
	c.JSON(http.StatusOK, []uuid.UUID{uuid.New(), uuid.New()})
}
