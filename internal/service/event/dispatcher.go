package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/model"
)

type handlerFactory func(p *processor) Handler

// Dispatcher looks up the handler registered for an event type and runs it.
// The handler table is built once at construction; there is no runtime
// registration.
type Dispatcher struct {
	events        eventRepository
	notifications notificationRepository
	queue         notificationPublisher
	renderer      renderer
	sendTime      sendTimeCalculator
	newClients    func() EnrichClients
	validate      *validator.Validate
	strategy      retry.Strategy

	handlers map[string]handlerFactory
}

// NewDispatcher wires the dispatcher with its static handler registry.
// newClients is called once per dispatched event so every handler run gets
// freshly acquired upstream clients, released on every exit path.
func NewDispatcher(
	events eventRepository,
	notifications notificationRepository,
	queue notificationPublisher,
	r renderer,
	sendTime sendTimeCalculator,
	newClients func() EnrichClients,
	validate *validator.Validate,
	strategy retry.Strategy,
) *Dispatcher {
	return &Dispatcher{
		events:        events,
		notifications: notifications,
		queue:         queue,
		renderer:      r,
		sendTime:      sendTime,
		newClients:    newClients,
		validate:      validate,
		strategy:      strategy,
		handlers: map[string]handlerFactory{
			model.EventNewUser: newNewUserHandler,
			model.EventSeries:  newNewEpisodeHandler,
			model.EventLike:    newLikeHandler,
			model.EventNews:    newNewsHandler,
		},
	}
}

// Dispatch decodes a raw event message, persists the event and delegates to
// the handler registered for its type.
//
// Returns ErrUnknownEventType for unregistered types (caller drops the
// message) and ErrInvalidEvent for malformed payloads (caller leaves the
// message unacked). Any other error means an upstream or persistence failure
// and aborts processing of the whole event.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) error {
	var event model.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	factory, ok := d.handlers[event.Type]
	if !ok {
		zlog.Logger.Error().Str("type", event.Type).Msg("event handler not registered")
		return fmt.Errorf("%w: %q", ErrUnknownEventType, event.Type)
	}

	if err := d.validate.Struct(event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	clients := d.newClients()
	defer clients.Close()

	p := &processor{
		events:        d.events,
		notifications: d.notifications,
		queue:         d.queue,
		renderer:      d.renderer,
		sendTime:      d.sendTime,
		clients:       clients,
		validate:      d.validate,
		strategy:      d.strategy,
	}

	id, err := d.events.CreateEvent(ctx, event)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("type", event.Type).Msg("failed to save event")
		return fmt.Errorf("failed to save event: %w", err)
	}
	event.ID = id

	return factory(p).ProcessEvent(ctx, event)
}
