// Package player projects player directory profiles into report rows.
package player

import (
	"strings"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// FreeAgentTeam is the team value used when a player has no team.
const FreeAgentTeam = "FA"

// PositionSeparator joins fantasy-eligible positions.
const PositionSeparator = ";"

// ResolveOrDefault returns the field's value, or def when it is unset.
func ResolveOrDefault(field model.Opt, def string) string {
	if !field.Set || field.Value == "" {
		return def
	}
	return field.Value
}

// JoinPositions serialises a fantasy position list; nil or empty yields "".
func JoinPositions(positions []string) string {
	return strings.Join(positions, PositionSeparator)
}

// Enrich builds the report row for playerID. Ids missing from dir produce a
// fully defaulted row rather than an error.
func Enrich(playerID string, dir model.PlayerDirectory, isStarter bool) model.EnrichedPlayer {
	p, _ := dir.Lookup(playerID)

	return model.EnrichedPlayer{
		PlayerID:            playerID,
		SearchFullName:      ResolveOrDefault(p.SearchFullName, ""),
		InjuryBodyPart:      ResolveOrDefault(p.InjuryBodyPart, ""),
		InjuryStatus:        ResolveOrDefault(p.InjuryStatus, ""),
		Age:                 ResolveOrDefault(p.Age, ""),
		Position:            ResolveOrDefault(p.Position, ""),
		PracticeDescription: ResolveOrDefault(p.PracticeDescription, ""),
		YearsExp:            ResolveOrDefault(p.YearsExp, ""),
		FantasyPositions:    JoinPositions(p.FantasyPositions),
		YahooID:             ResolveOrDefault(p.YahooID, ""),
		RotoworldID:         ResolveOrDefault(p.RotoworldID, ""),
		StatsID:             ResolveOrDefault(p.StatsID, ""),
		Team:                ResolveOrDefault(p.Team, FreeAgentTeam),
		IsStarter:           isStarter,
	}
}

// EnrichAll enriches ids in order, marking those in starters.
func EnrichAll(ids []string, dir model.PlayerDirectory, isStarter func(id string) bool) []model.EnrichedPlayer {
	rows := make([]model.EnrichedPlayer, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, Enrich(id, dir, isStarter(id)))
	}
	return rows
}
