package api

import (
	"strconv"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// ToModel converts a RosterResponse to model.Roster.
func (r *RosterResponse) ToModel() model.Roster {
	roster := model.Roster{
		OwnerID:  r.OwnerID.String(),
		RosterID: ParseInt(r.RosterID.String()),
		LeagueID: r.LeagueID.String(),
		Players:  scalarsToStrings(r.Players),
		Starters: scalarsToStrings(r.Starters),
	}

	if r.Settings != nil {
		roster.Settings = model.RosterSettings{
			Wins:          int(r.Settings.Wins.Float()),
			Losses:        int(r.Settings.Losses.Float()),
			FantasyPoints: r.Settings.Fpts.Float(),
		}
	}

	return roster
}

// ToModel converts a PlayerResponse to model.PlayerProfile. Falsy values
// become unset fields.
func (p *PlayerResponse) ToModel() model.PlayerProfile {
	return model.PlayerProfile{
		SearchFullName:      toOpt(p.SearchFullName),
		InjuryBodyPart:      toOpt(p.InjuryBodyPart),
		InjuryStatus:        toOpt(p.InjuryStatus),
		Age:                 toOpt(p.Age),
		Position:            toOpt(p.Position),
		PracticeDescription: toOpt(p.PracticeDescription),
		YearsExp:            toOpt(p.YearsExp),
		YahooID:             toOpt(p.YahooID),
		RotoworldID:         toOpt(p.RotoworldID),
		StatsID:             toOpt(p.StatsID),
		Team:                toOpt(p.Team),
		FantasyPositions:    scalarsToStrings(p.FantasyPositions),
	}
}

// RostersToModel converts a roster list response.
func RostersToModel(resp []RosterResponse) []model.Roster {
	rosters := make([]model.Roster, 0, len(resp))
	for i := range resp {
		rosters = append(rosters, resp[i].ToModel())
	}
	return rosters
}

// DirectoryToModel converts a player directory response.
func DirectoryToModel(resp map[string]PlayerResponse) model.PlayerDirectory {
	dir := make(model.PlayerDirectory, len(resp))
	for id, p := range resp {
		dir[id] = p.ToModel()
	}
	return dir
}

// ParseInt parses a decimal integer, returning 0 for empty or invalid input.
func ParseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func toOpt(s Scalar) model.Opt {
	if !s.Truthy() {
		return model.Opt{}
	}
	return model.Opt{Value: s.String(), Set: true}
}

// scalarsToStrings drops nulls and keeps every other token's text.
func scalarsToStrings(in []Scalar) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s.IsNull() {
			continue
		}
		out = append(out, s.String())
	}
	return out
}
