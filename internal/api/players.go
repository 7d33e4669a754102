package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// DefaultSport is the sport whose player directory is fetched.
const DefaultSport = "nfl"

// PlayersPath returns the API path of the player directory for sport.
func PlayersPath(sport string) string {
	return "/players/" + url.PathEscape(sport)
}

// GetPlayers fetches the full player directory for sport. The NFL directory
// is several megabytes; Sleeper asks clients to call it at most once a day.
func (c *Client) GetPlayers(ctx context.Context, sport string) (model.PlayerDirectory, error) {
	if sport == "" {
		sport = DefaultSport
	}

	var resp map[string]PlayerResponse
	if err := c.get(ctx, PlayersPath(sport), &resp); err != nil {
		return nil, fmt.Errorf("get players %s: %w", sport, err)
	}
	return DirectoryToModel(resp), nil
}
