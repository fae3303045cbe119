// Command eventgen posts sample events to the ingest API, one of each type
// per round. Useful for smoke-testing a locally running pipeline.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/api/dto"
	"github.com/cinenotify/notification-service/internal/model"
)

func main() {
	apiURL := flag.String("url", "http://localhost:8080/api/v1/notification", "ingest API endpoint")
	rounds := flag.Int("rounds", 1, "number of rounds to send")
	pause := flag.Duration("pause", time.Second, "pause between rounds")
	flag.Parse()

	zlog.Init()

	client := &http.Client{Timeout: 10 * time.Second}

	for i := 0; i < *rounds; i++ {
		for _, event := range sampleEvents() {
			if err := post(client, *apiURL, event); err != nil {
				zlog.Logger.Error().Err(err).Str("type", event.Type).Msg("failed to send event")
				continue
			}

			zlog.Logger.Info().Str("type", event.Type).Msg("event sent")
		}

		time.Sleep(*pause)
	}
}

func sampleEvents() []dto.EventRequest {
	now := time.Now().UTC()
	deferred := now.Add(time.Duration(1+rand.Intn(48)) * time.Hour)

	return []dto.EventRequest{
		{
			Type:      model.EventNewUser,
			EventDate: now,
			Data: mustMarshal(model.NewUserData{
				UserID: uuid.New(),
				URL:    "https://cinema.example/confirm",
			}),
		},
		{
			Type:      model.EventSeries,
			EventDate: now,
			SendDate:  &deferred,
			Data: mustMarshal(model.NewEpisodeData{
				FilmworkID: uuid.New(),
				EpisodeID:  uuid.New(),
			}),
		},
		{
			Type:      model.EventLike,
			EventDate: now,
			Data: mustMarshal(model.LikeData{
				AuthorID: uuid.New(),
				FilmID:   uuid.New(),
				ReviewID: uuid.New(),
				UserID:   uuid.New(),
				Score:    rand.Intn(11),
			}),
		},
		{
			Type:      model.EventNews,
			EventDate: now,
			Data: mustMarshal(model.NewsData{
				Message: "A fresh batch of movies just landed!",
			}),
		},
	}
}

func post(client *http.Client, url string, event dto.EventRequest) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ingest API responded with %s", resp.Status)
	}

	return nil
}

func mustMarshal(v interface{}) json.RawMessage {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return body
}
