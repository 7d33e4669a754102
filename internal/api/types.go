package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// RosterResponse is one element of GET /league/{league_id}/rosters.
type RosterResponse struct {
	OwnerID  Scalar          `json:"owner_id"`
	RosterID Scalar          `json:"roster_id"`
	LeagueID Scalar          `json:"league_id"`
	Players  []Scalar        `json:"players"`
	Starters []Scalar        `json:"starters"`
	Settings *RosterSettings `json:"settings"`
}

// RosterSettings is the settings object of a roster. Only the season record
// is read; Sleeper sends many more fields.
type RosterSettings struct {
	Wins   Scalar `json:"wins"`
	Losses Scalar `json:"losses"`
	Fpts   Scalar `json:"fpts"`
}

// PlayerResponse is one value of GET /players/{sport}.
type PlayerResponse struct {
	SearchFullName      Scalar     `json:"search_full_name"`
	InjuryBodyPart      Scalar     `json:"injury_body_part"`
	InjuryStatus        Scalar     `json:"injury_status"`
	Age                 Scalar     `json:"age"`
	Position            Scalar     `json:"position"`
	PracticeDescription Scalar     `json:"practice_description"`
	YearsExp            Scalar     `json:"years_exp"`
	FantasyPositions    ScalarList `json:"fantasy_positions"`
	YahooID             Scalar     `json:"yahoo_id"`
	RotoworldID         Scalar     `json:"rotoworld_id"`
	StatsID             Scalar     `json:"stats_id"`
	Team                Scalar     `json:"team"`
}

type scalarKind uint8

const (
	kindNull scalarKind = iota
	kindString
	kindNumber
	kindBool
)

// Scalar is a loosely typed JSON value. Sleeper mixes strings and numbers for
// the same field across players, so the literal text is kept as-is: numbers
// keep their source form ("25", "2.5"), booleans render as "True"/"False".
// Objects and arrays decode as null.
type Scalar struct {
	text string
	kind scalarKind
}

// StringScalar returns a Scalar holding a JSON string.
func StringScalar(s string) Scalar {
	return Scalar{text: s, kind: kindString}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*s = Scalar{}
		return nil
	}

	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar{text: str, kind: kindString}
	case 't':
		*s = Scalar{text: "True", kind: kindBool}
	case 'f':
		*s = Scalar{text: "False", kind: kindBool}
	case 'n', '{', '[':
		*s = Scalar{}
	default:
		*s = Scalar{text: string(b), kind: kindNumber}
	}
	return nil
}

// String returns the value's text, or "" for null.
func (s Scalar) String() string {
	return s.text
}

// IsNull reports whether the value was null or absent.
func (s Scalar) IsNull() bool {
	return s.kind == kindNull
}

// Truthy reports whether the value is non-empty and non-zero.
func (s Scalar) Truthy() bool {
	switch s.kind {
	case kindString:
		return s.text != ""
	case kindNumber:
		f, err := strconv.ParseFloat(s.text, 64)
		return err != nil || f != 0
	case kindBool:
		return s.text == "True"
	default:
		return false
	}
}

// Float returns the numeric value, or 0 when the value is null or does not
// parse. Numeric strings such as "612.5" are accepted.
func (s Scalar) Float() float64 {
	if s.kind != kindNumber && s.kind != kindString {
		return 0
	}
	f, err := strconv.ParseFloat(s.text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ScalarList is a JSON array of Scalars. Any non-array value decodes as an
// empty list.
type ScalarList []Scalar

// UnmarshalJSON implements json.Unmarshaler.
func (l *ScalarList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*l = nil
		return nil
	}

	var items []Scalar
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}
