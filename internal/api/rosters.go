package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// LeagueRostersPath returns the API path listing a league's rosters.
func LeagueRostersPath(leagueID string) string {
	return "/league/" + url.PathEscape(leagueID) + "/rosters"
}

// GetLeagueRosters fetches every roster in a league.
func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var resp []RosterResponse
	if err := c.get(ctx, LeagueRostersPath(leagueID), &resp); err != nil {
		return nil, fmt.Errorf("get rosters %s: %w", leagueID, err)
	}
	return RostersToModel(resp), nil
}
