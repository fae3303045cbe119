package mockapi

import (
	"github.com/wb-go/wbf/ginext"
)

func NewRouter(handler *Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/v1")

	api.GET("/profile/:profile_id", handler.GetProfile)
	api.GET("/filmwork/:filmwork_id/episode/:episode_id", handler.GetEpisode)
	api.GET("/subscribers/filmwork/:filmwork_id", handler.GetSubscribers)

	return e
}
