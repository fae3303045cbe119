package model

// UserProfile is the read-only projection returned by the profile service.
type UserProfile struct {
	Email                string          `json:"email"`
	Fullname             string          `json:"fullname"`
	TelegramChatID       string          `json:"telegram_chat_id"`
	NotificationSettings map[string]bool `json:"notification_settings"`
	Timezone             string          `json:"timezone"`
}

// ChannelEnabled reports whether the user has opted into the given channel.
// A missing entry counts as disabled.
func (p UserProfile) ChannelEnabled(channel string) bool {
	return p.NotificationSettings[channel]
}

// EpisodeInfo is the content service projection of a freshly released episode.
type EpisodeInfo struct {
	SeriesName  string `json:"series_name"`
	EpisodeName string `json:"episode_name"`
	URL         string `json:"url"`
}
