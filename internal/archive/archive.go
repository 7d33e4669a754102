package archive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// DB is the subset of *pgxpool.Pool used by the archive.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run is one completed report.
type Run struct {
	ID        uuid.UUID
	OwnerID   string
	CreatedAt time.Time
	Leagues   []model.LeagueSummary
	Players   []model.EnrichedPlayer
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS roster_report_runs (
		run_id     UUID PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roster_report_leagues (
		run_id     UUID NOT NULL REFERENCES roster_report_runs (run_id) ON DELETE CASCADE,
		league_idx INT NOT NULL,
		league_id  TEXT NOT NULL,
		roster_id  INT NOT NULL,
		wins       INT NOT NULL,
		losses     INT NOT NULL,
		fpts       DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, league_idx)
	)`,
	`CREATE TABLE IF NOT EXISTS roster_report_rows (
		run_id               UUID NOT NULL REFERENCES roster_report_runs (run_id) ON DELETE CASCADE,
		row_idx              INT NOT NULL,
		player_id            TEXT NOT NULL,
		search_full_name     TEXT NOT NULL,
		injury_body_part     TEXT NOT NULL,
		injury_status        TEXT NOT NULL,
		age                  TEXT NOT NULL,
		position             TEXT NOT NULL,
		practice_description TEXT NOT NULL,
		years_exp            TEXT NOT NULL,
		fantasy_positions    TEXT NOT NULL,
		yahoo_id             TEXT NOT NULL,
		rotoworld_id         TEXT NOT NULL,
		stats_id             TEXT NOT NULL,
		team                 TEXT NOT NULL,
		is_starter           BOOLEAN NOT NULL,
		PRIMARY KEY (run_id, row_idx)
	)`,
}

// rowColumns is the COPY column list for roster_report_rows.
var rowColumns = []string{
	"run_id", "row_idx", "player_id", "search_full_name", "injury_body_part",
	"injury_status", "age", "position", "practice_description", "years_exp",
	"fantasy_positions", "yahoo_id", "rotoworld_id", "stats_id", "team", "is_starter",
}

// Archive writes runs to PostgreSQL.
type Archive struct {
	db     DB
	logger *slog.Logger
}

// New creates an Archive.
func New(db DB, logger *slog.Logger) *Archive {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archive{db: db, logger: logger}
}

// NewRun stamps a run with a fresh id and the current time.
func NewRun(ownerID string, leagues []model.LeagueSummary, players []model.EnrichedPlayer) Run {
	return Run{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		Leagues:   leagues,
		Players:   players,
	}
}

// EnsureSchema creates the archive tables if they do not exist.
func (a *Archive) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := a.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// WriteRun stores run and all of its rows atomically.
func (a *Archive) WriteRun(ctx context.Context, run Run) error {
	start := time.Now()

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	runID := run.ID.String()

	if _, err := tx.Exec(ctx, `
		INSERT INTO roster_report_runs (run_id, owner_id, created_at)
		VALUES ($1, $2, $3)
	`, runID, run.OwnerID, run.CreatedAt); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, l := range run.Leagues {
		if _, err := tx.Exec(ctx, `
			INSERT INTO roster_report_leagues (run_id, league_idx, league_id, roster_id, wins, losses, fpts)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, runID, i, l.LeagueID, l.RosterID, l.Wins, l.Losses, l.FantasyPoints); err != nil {
			return fmt.Errorf("insert league %s: %w", l.LeagueID, err)
		}
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"roster_report_rows"},
		rowColumns,
		pgx.CopyFromRows(rowValues(runID, run.Players)),
	)
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	a.logger.Info("archived run",
		"run_id", runID,
		"leagues", len(run.Leagues),
		"rows", copied,
		"duration", time.Since(start),
	)
	return nil
}

func rowValues(runID string, players []model.EnrichedPlayer) [][]any {
	rows := make([][]any, 0, len(players))
	for i, p := range players {
		rows = append(rows, []any{
			runID,
			i,
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
			p.IsStarter,
		})
	}
	return rows
}
