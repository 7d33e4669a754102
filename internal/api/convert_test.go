package api

import (
	"encoding/json"
	"testing"
)

func TestScalarUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantText   string
		wantNull   bool
		wantTruthy bool
	}{
		{"string", `"KC"`, "KC", false, true},
		{"empty string", `""`, "", false, false},
		{"integer", `25`, "25", false, true},
		{"zero", `0`, "0", false, false},
		{"float keeps source form", `2.50`, "2.50", false, true},
		{"negative", `-3`, "-3", false, true},
		{"true", `true`, "True", false, true},
		{"false", `false`, "False", false, false},
		{"null", `null`, "", true, false},
		{"object decodes as null", `{"a": 1}`, "", true, false},
		{"array decodes as null", `[1, 2]`, "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scalar
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if s.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", s.String(), tt.wantText)
			}
			if s.IsNull() != tt.wantNull {
				t.Errorf("IsNull() = %v, want %v", s.IsNull(), tt.wantNull)
			}
			if s.Truthy() != tt.wantTruthy {
				t.Errorf("Truthy() = %v, want %v", s.Truthy(), tt.wantTruthy)
			}
		})
	}
}

func TestScalarMissingField(t *testing.T) {
	var p PlayerResponse
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !p.Team.IsNull() {
		t.Error("missing team should be null")
	}
}

func TestRosterToModel(t *testing.T) {
	t.Run("full roster", func(t *testing.T) {
		r := RosterResponse{
			OwnerID:  StringScalar("470333759997079552"),
			RosterID: Scalar{text: "4", kind: kindNumber},
			LeagueID: StringScalar("1258502970421563392"),
			Players:  []Scalar{StringScalar("100"), {}, StringScalar("SF")},
			Starters: []Scalar{StringScalar("100")},
			Settings: &RosterSettings{
				Wins:   Scalar{text: "3", kind: kindNumber},
				Losses: Scalar{text: "1", kind: kindNumber},
				Fpts:   Scalar{text: "402.5", kind: kindNumber},
			},
		}

		m := r.ToModel()
		if m.RosterID != 4 {
			t.Errorf("RosterID = %d, want 4", m.RosterID)
		}
		if len(m.Players) != 2 || m.Players[0] != "100" || m.Players[1] != "SF" {
			t.Errorf("Players = %v, want [100 SF]", m.Players)
		}
		if m.Settings.FantasyPoints != 402.5 {
			t.Errorf("FantasyPoints = %v, want 402.5", m.Settings.FantasyPoints)
		}
	})

	t.Run("nil settings", func(t *testing.T) {
		r := RosterResponse{OwnerID: StringScalar("u")}
		m := r.ToModel()
		if m.Settings.Wins != 0 || m.Settings.Losses != 0 || m.Settings.FantasyPoints != 0 {
			t.Errorf("Settings = %+v, want zero", m.Settings)
		}
		if m.Players != nil {
			t.Errorf("Players = %v, want nil", m.Players)
		}
	})
}

func TestRosterSettingsLenient(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWins   int
		wantLosses int
		wantFpts   float64
	}{
		{"numbers", `{"wins": 4, "losses": 1, "fpts": 612}`, 4, 1, 612},
		{"numeric strings", `{"wins": "4", "losses": "1", "fpts": "612.5"}`, 4, 1, 612.5},
		{"unparseable values", `{"wins": "n/a", "losses": true, "fpts": {"total": 3}}`, 0, 0, 0},
		{"non-finite strings", `{"wins": "NaN", "losses": "Inf", "fpts": "-Infinity"}`, 0, 0, 0},
		{"nulls", `{"wins": null, "losses": null, "fpts": null}`, 0, 0, 0},
		{"missing fields", `{}`, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RosterResponse
			if err := json.Unmarshal([]byte(`{"owner_id": "u", "settings": `+tt.input+`}`), &r); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			m := r.ToModel()
			if m.Settings.Wins != tt.wantWins {
				t.Errorf("Wins = %d, want %d", m.Settings.Wins, tt.wantWins)
			}
			if m.Settings.Losses != tt.wantLosses {
				t.Errorf("Losses = %d, want %d", m.Settings.Losses, tt.wantLosses)
			}
			if m.Settings.FantasyPoints != tt.wantFpts {
				t.Errorf("FantasyPoints = %v, want %v", m.Settings.FantasyPoints, tt.wantFpts)
			}
		})
	}
}

func TestFantasyPositionsLenient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"array", `["RB", "FLEX"]`, []string{"RB", "FLEX"}},
		{"empty array", `[]`, nil},
		{"null", `null`, nil},
		{"string", `"QB"`, nil},
		{"number", `7`, nil},
		{"object", `{"0": "QB"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PlayerResponse
			if err := json.Unmarshal([]byte(`{"fantasy_positions": `+tt.input+`}`), &p); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			got := p.ToModel().FantasyPositions
			if len(got) != len(tt.want) {
				t.Fatalf("FantasyPositions = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FantasyPositions = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDirectoryOffTypeEntry(t *testing.T) {
	body := `{
		"100": {"search_full_name": "joeburrow", "fantasy_positions": ["QB"], "team": "CIN"},
		"999": {"fantasy_positions": "QB", "age": [1], "team": {"abbr": "KC"}}
	}`

	var resp map[string]PlayerResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	dir := DirectoryToModel(resp)

	if got := dir["100"].FantasyPositions; len(got) != 1 || got[0] != "QB" {
		t.Errorf("100 FantasyPositions = %v, want [QB]", got)
	}
	odd := dir["999"]
	if len(odd.FantasyPositions) != 0 || odd.Age.Set || odd.Team.Set {
		t.Errorf("999 = %+v, want all fields unset", odd)
	}
}

func TestPlayerToModel(t *testing.T) {
	p := PlayerResponse{
		SearchFullName:   StringScalar("christianmccaffrey"),
		YearsExp:         Scalar{text: "0", kind: kindNumber},
		FantasyPositions: []Scalar{StringScalar("RB"), StringScalar("FLEX")},
		Team:             StringScalar(""),
	}

	m := p.ToModel()
	if !m.SearchFullName.Set || m.SearchFullName.Value != "christianmccaffrey" {
		t.Errorf("SearchFullName = %+v", m.SearchFullName)
	}
	if m.YearsExp.Set {
		t.Errorf("YearsExp 0 should be unset, got %+v", m.YearsExp)
	}
	if m.Team.Set {
		t.Errorf("empty Team should be unset, got %+v", m.Team)
	}
	if len(m.FantasyPositions) != 2 {
		t.Errorf("FantasyPositions = %v", m.FantasyPositions)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"", 0},
		{"1.5", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	if got := LeagueRostersPath("1258502970421563392"); got != "/league/1258502970421563392/rosters" {
		t.Errorf("LeagueRostersPath() = %q", got)
	}
	if got := PlayersPath("nfl"); got != "/players/nfl" {
		t.Errorf("PlayersPath() = %q", got)
	}
}
