package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// Header is the CSV column order.
var Header = []string{
	"player_id",
	"search_full_name",
	"injury_body_part",
	"injury_status",
	"age",
	"position",
	"practice_description",
	"years_exp",
	"fantasy_positions",
	"yahoo_id",
	"rotoworld_id",
	"stats_id",
	"team",
	"is_starter",
}

// Row returns the CSV fields of p in Header order.
func Row(p model.EnrichedPlayer) []string {
	return []string{
		p.PlayerID,
		p.SearchFullName,
		p.InjuryBodyPart,
		p.InjuryStatus,
		p.Age,
		p.Position,
		p.PracticeDescription,
		p.YearsExp,
		p.FantasyPositions,
		p.YahooID,
		p.RotoworldID,
		p.StatsID,
		p.Team,
		FormatBool(p.IsStarter),
	}
}

// FormatBool renders the starter flag as True/False.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WriteCSV writes the header and rows to w. Lines end in CRLF.
func WriteCSV(w io.Writer, rows []model.EnrichedPlayer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile replaces path with the CSV for rows, creating parent directories.
func WriteFile(path string, rows []model.EnrichedPlayer) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := WriteCSV(tmp, rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
