// Package template renders per-channel notification messages. Templates are
// registered once at startup in a static table keyed by event type and
// channel; rendering is a pure function of its inputs.
package template

import (
	"bytes"
	"errors"
	"fmt"
	texttemplate "text/template"

	"github.com/cinenotify/notification-service/internal/model"
)

var ErrTemplateNotFound = errors.New("template not found")

type key struct {
	eventType string
	channel   string
}

// Registry holds the parsed message templates.
type Registry struct {
	templates map[key]*texttemplate.Template
}

var defaultTemplates = map[key]string{
	{model.EventNewUser, model.ChannelEmail}: "Hello, {{.fullname}}! Please confirm your registration: {{.url}}",

	{model.EventSeries, model.ChannelEmail}:     "Hello, {{.fullname}}! A new episode of {{.series_name}} is out: {{.episode_name}}. Watch it here: {{.url}}",
	{model.EventSeries, model.ChannelWebsocket}: "{{.series_name}}: new episode {{.episode_name}} is out!",
	{model.EventSeries, model.ChannelTelegram}:  "A new episode of {{.series_name}} is out: {{.episode_name}}. Watch it here: {{.url}}",

	{model.EventLike, model.ChannelEmail}:     "Hello, {{.fullname}}! Someone liked your review and rated it {{.score}}.",
	{model.EventLike, model.ChannelWebsocket}: "Your review got a new like ({{.score}}/10).",
	{model.EventLike, model.ChannelTelegram}:  "Your review got a new like ({{.score}}/10).",

	{model.EventNews, model.ChannelWebsocket}: "{{.message}}",
}

// NewRegistry parses the built-in template set. It panics on a malformed
// template since that is a programming error caught at startup.
func NewRegistry() *Registry {
	templates := make(map[key]*texttemplate.Template, len(defaultTemplates))

	for k, text := range defaultTemplates {
		templates[k] = texttemplate.Must(
			texttemplate.New(k.eventType + ":" + k.channel).Parse(text),
		)
	}

	return &Registry{templates: templates}
}

// Render substitutes context into the template registered for the given
// event type and channel. Same inputs always yield the same message.
func (r *Registry) Render(eventType, channel string, context map[string]string) (string, error) {
	tmpl, ok := r.templates[key{eventType, channel}]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, eventType, channel)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("failed to render template %s/%s: %w", eventType, channel, err)
	}

	return buf.String(), nil
}
