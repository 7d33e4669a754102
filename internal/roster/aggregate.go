package roster

import "github.com/rickgao/sleeper-roster/internal/model"

// LeagueResult is one league's contribution for the target owner.
type LeagueResult struct {
	Players  Set
	Starters Set
	Summary  *model.LeagueSummary // nil when the owner has no roster in the league
}

// Found reports whether the owner had a roster in the league.
func (r LeagueResult) Found() bool {
	return r.Summary != nil
}

// IsPlayerToken reports whether a roster token names a player rather than a
// team defense: it must be non-empty and all ASCII decimal digits.
func IsPlayerToken(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// Aggregate extracts ownerID's players, starters and record from one league's
// rosters. The first roster owned by ownerID wins; later ones are ignored.
func Aggregate(rosters []model.Roster, ownerID string) LeagueResult {
	for i := range rosters {
		r := &rosters[i]
		if r.OwnerID != ownerID {
			continue
		}

		return LeagueResult{
			Players:  filterPlayers(r.Players),
			Starters: filterPlayers(r.Starters),
			Summary: &model.LeagueSummary{
				RosterID:      r.RosterID,
				LeagueID:      r.LeagueID,
				Wins:          r.Settings.Wins,
				Losses:        r.Settings.Losses,
				FantasyPoints: r.Settings.FantasyPoints,
			},
		}
	}

	return LeagueResult{Players: Set{}, Starters: Set{}}
}

func filterPlayers(tokens []string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		if IsPlayerToken(t) {
			s[t] = struct{}{}
		}
	}
	return s
}

// Accumulator is the running result across leagues. Add returns a new value
// and leaves the receiver untouched.
type Accumulator struct {
	Players   Set
	Starters  Set
	Summaries []model.LeagueSummary
}

// Add folds one league's result into the accumulator.
func (a Accumulator) Add(r LeagueResult) Accumulator {
	return Accumulator{
		Players:   a.Players.Union(r.Players),
		Starters:  a.Starters.Union(r.Starters),
		Summaries: append(a.Summaries[:len(a.Summaries):len(a.Summaries)], summaries(r)...),
	}
}

// Empty reports whether no players were collected.
func (a Accumulator) Empty() bool {
	return a.Players.Len() == 0
}

// Fold aggregates every league in order, starting from an empty accumulator.
func Fold(leagues [][]model.Roster, ownerID string) Accumulator {
	var acc Accumulator
	for _, rosters := range leagues {
		acc = acc.Add(Aggregate(rosters, ownerID))
	}
	return acc
}

func summaries(r LeagueResult) []model.LeagueSummary {
	if r.Summary == nil {
		return nil
	}
	return []model.LeagueSummary{*r.Summary}
}
