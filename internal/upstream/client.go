// Package upstream calls the read-only enrichment services: user profiles,
// episode content and filmwork subscribers.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/config"
	"github.com/cinenotify/notification-service/internal/model"
)

// ErrUpstream marks any non-2xx response or transport failure from an
// enrichment service. It is fatal for the message being processed: the caller
// propagates it so the queue redelivers the event.
var ErrUpstream = errors.New("upstream request failed")

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Clients bundles the enrichment service clients for one processed event.
// Acquire with NewClients on entry, release with Close on every exit path.
type Clients struct {
	profileURL string
	contentURL string
	ugcURL     string

	httpClient *http.Client
	cache      cache
	cacheTTL   time.Duration
	strategy   retry.Strategy
}

// NewClients creates the enrichment clients with a per-call timeout. The
// cache is optional; passing nil disables profile caching.
func NewClients(cfg config.Services, c cache, strategy retry.Strategy) *Clients {
	return &Clients{
		profileURL: cfg.ProfileURL,
		contentURL: cfg.ContentURL,
		ugcURL:     cfg.UGCURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      c,
		cacheTTL:   cfg.ProfileCacheTTL,
		strategy:   strategy,
	}
}

// Close releases idle connections held by the HTTP client.
func (c *Clients) Close() {
	c.httpClient.CloseIdleConnections()
}

// GetUserProfile fetches a user profile, going through the Redis cache first
// so a fan-out does not hit the profile service once per notification.
func (c *Clients) GetUserProfile(ctx context.Context, userID uuid.UUID) (model.UserProfile, error) {
	key := "profile:" + userID.String()

	if c.cache != nil {
		cached, err := c.cache.GetWithRetry(ctx, c.strategy, key)
		if err != nil && !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get profile from cache")
		}

		if err == nil {
			var profile model.UserProfile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				return profile, nil
			}
		}
	}

	var profile model.UserProfile
	url := fmt.Sprintf("%s/api/v1/profile/%s", c.profileURL, userID)
	if err := c.getJSON(ctx, url, &profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to get user profile %s: %w", userID, err)
	}

	if c.cache != nil {
		// the entry must expire so opt-out changes in the profile service
		// take effect; a forever-cached profile would override them
		body, _ := json.Marshal(profile)
		err := retry.Do(func() error {
			return c.cache.SetWithExpiration(ctx, key, string(body), c.cacheTTL)
		}, c.strategy)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to cache profile")
		}
	}

	return profile, nil
}

// GetEpisodeInfo fetches metadata of a freshly released episode from the
// content service.
func (c *Clients) GetEpisodeInfo(ctx context.Context, filmworkID, episodeID uuid.UUID) (model.EpisodeInfo, error) {
	var info model.EpisodeInfo
	url := fmt.Sprintf("%s/api/v1/filmwork/%s/episode/%s", c.contentURL, filmworkID, episodeID)
	if err := c.getJSON(ctx, url, &info); err != nil {
		return model.EpisodeInfo{}, fmt.Errorf("failed to get episode %s/%s: %w", filmworkID, episodeID, err)
	}

	return info, nil
}

// GetSubscribers fetches the users subscribed to a filmwork from the UGC
// service.
func (c *Clients) GetSubscribers(ctx context.Context, filmworkID uuid.UUID) ([]uuid.UUID, error) {
	var subscribers []uuid.UUID
	url := fmt.Sprintf("%s/api/v1/subscribers/filmwork/%s", c.ugcURL, filmworkID)
	if err := c.getJSON(ctx, url, &subscribers); err != nil {
		return nil, fmt.Errorf("failed to get subscribers for %s: %w", filmworkID, err)
	}

	return subscribers, nil
}

func (c *Clients) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUpstream, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s: status %d", ErrUpstream, url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %v", ErrUpstream, url, err)
	}

	return nil
}
