package model

// -----------------------------------------------------------------------------
// League Types
// -----------------------------------------------------------------------------

// Roster is one participant's roster entry within a single league.
type Roster struct {
	OwnerID  string         // Sleeper user id of the owner
	RosterID int            // Roster slot within the league
	LeagueID string         // League the roster belongs to
	Players  []string       // All held tokens (may include team defenses)
	Starters []string       // Starting tokens (same caveat)
	Settings RosterSettings // Season record
}

// RosterSettings is the season record of a roster. Missing fields are zero.
type RosterSettings struct {
	Wins          int
	Losses        int
	FantasyPoints float64
}

// LeagueSummary is the per-league record printed at the end of a run.
type LeagueSummary struct {
	RosterID      int
	LeagueID      string
	Wins          int
	Losses        int
	FantasyPoints float64
}

// -----------------------------------------------------------------------------
// Player Types
// -----------------------------------------------------------------------------

// Opt is an optional profile field. Set is false when the upstream value was
// absent or falsy (null, "", 0, false).
type Opt struct {
	Value string
	Set   bool
}

// Some returns an Opt holding v. An empty v is treated as unset.
func Some(v string) Opt {
	return Opt{Value: v, Set: v != ""}
}

// PlayerProfile is one entry of the player directory.
type PlayerProfile struct {
	SearchFullName      Opt
	InjuryBodyPart      Opt
	InjuryStatus        Opt
	Age                 Opt
	Position            Opt
	PracticeDescription Opt
	YearsExp            Opt
	YahooID             Opt
	RotoworldID         Opt
	StatsID             Opt
	Team                Opt
	FantasyPositions    []string
}

// PlayerDirectory maps player id to profile. Read-only once fetched.
type PlayerDirectory map[string]PlayerProfile

// Lookup returns the profile for id and whether it exists.
func (d PlayerDirectory) Lookup(id string) (PlayerProfile, bool) {
	p, ok := d[id]
	return p, ok
}

// EnrichedPlayer is one row of the roster report.
type EnrichedPlayer struct {
	PlayerID            string
	SearchFullName      string
	InjuryBodyPart      string
	InjuryStatus        string
	Age                 string
	Position            string
	PracticeDescription string
	YearsExp            string
	FantasyPositions    string // ';'-joined
	YahooID             string
	RotoworldID         string
	StatsID             string
	Team                string // "FA" when unknown
	IsStarter           bool
}
