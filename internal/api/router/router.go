package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/cinenotify/notification-service/internal/api/handlers/event"
)

func New(handler *event.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/v1")

	api.POST("/notification", handler.Create)
	api.GET("/healthcheck", handler.Health)

	return e
}
