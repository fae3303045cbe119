// Package event exposes the ingest endpoint: producers post domain events
// here and they are forwarded to the events queue.
package event

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/api/dto"
	"github.com/cinenotify/notification-service/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks

type eventPublisher interface {
	Publish(body []byte, strategy retry.Strategy) error
}

type Handler struct {
	queue     eventPublisher
	validator *validator.Validate
	strategy  retry.Strategy
}

func NewHandler(q eventPublisher, v *validator.Validate, strategy retry.Strategy) *Handler {
	return &Handler{queue: q, validator: v, strategy: strategy}
}

// Create accepts an event and publishes it to the events queue. The event is
// not processed synchronously; the worker picks it up from the queue.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.EventRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	body, err := json.Marshal(req)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to marshal event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := h.queue.Publish(body, h.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("type", req.Type).Msg("failed to publish event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "event accepted")
}

// Health reports service liveness.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, "notification service is OK")
}
