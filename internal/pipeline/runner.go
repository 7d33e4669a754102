package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rickgao/sleeper-roster/internal/archive"
	"github.com/rickgao/sleeper-roster/internal/model"
	"github.com/rickgao/sleeper-roster/internal/player"
	"github.com/rickgao/sleeper-roster/internal/report"
	"github.com/rickgao/sleeper-roster/internal/roster"
)

// ErrNoPlayers is returned when the owner has no players in any league.
var ErrNoPlayers = errors.New("no players found for owner")

// Fetcher retrieves Sleeper data. *api.Client implements it.
type Fetcher interface {
	GetLeagueRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetPlayers(ctx context.Context, sport string) (model.PlayerDirectory, error)
}

// Archiver stores a completed run. *archive.Archive implements it.
type Archiver interface {
	WriteRun(ctx context.Context, run archive.Run) error
}

// FetchError is a fatal upstream failure.
type FetchError struct {
	Resource string // "league <id>" or "players <sport>"
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Config holds the parameters of one run.
type Config struct {
	OwnerID     string
	Leagues     []string
	Sport       string
	Output      string
	PreviewRows int
}

// Result describes a completed run.
type Result struct {
	RunID     uuid.UUID
	Players   []model.EnrichedPlayer
	Summaries []model.LeagueSummary
	Output    string
}

// Runner executes report runs.
type Runner struct {
	cfg      Config
	fetcher  Fetcher
	archiver Archiver
	out      io.Writer
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithArchiver stores each completed run.
func WithArchiver(a Archiver) Option {
	return func(r *Runner) {
		r.archiver = a
	}
}

// WithOutput sets where the summary and preview are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner. Output defaults to io.Discard.
func New(cfg Config, fetcher Fetcher, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		fetcher: fetcher,
		out:     io.Discard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one report. It returns ErrNoPlayers when the owner has no
// players, and a *FetchError when any upstream request fails.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New()
	logger := r.logger.With("run_id", runID.String())

	logger.Info("analyzing rosters", "owner_id", r.cfg.OwnerID, "leagues", len(r.cfg.Leagues))

	acc, err := r.collect(ctx, logger)
	if err != nil {
		return nil, err
	}

	if acc.Empty() {
		logger.Info("no players found for owner", "owner_id", r.cfg.OwnerID)
		return nil, ErrNoPlayers
	}

	logger.Info("total unique players across all leagues", "players", acc.Players.Len())

	dir, err := r.fetcher.GetPlayers(ctx, r.cfg.Sport)
	if err != nil {
		return nil, &FetchError{Resource: "players " + r.cfg.Sport, Err: err}
	}
	logger.Debug("player directory loaded", "profiles", len(dir))

	ids := roster.Order(acc.Players, acc.Starters)
	rows := player.EnrichAll(ids, dir, acc.Starters.Has)

	if err := report.WriteFile(r.cfg.Output, rows); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	logger.Info("data written", "path", r.cfg.Output, "rows", len(rows))

	report.PrintSummary(r.out, acc.Summaries)
	if r.cfg.PreviewRows > 0 {
		if err := report.Preview(r.out, r.cfg.Output, r.cfg.PreviewRows); err != nil {
			logger.Warn("preview failed", "error", err)
		}
	}

	result := &Result{
		RunID:     runID,
		Players:   rows,
		Summaries: acc.Summaries,
		Output:    r.cfg.Output,
	}

	if r.archiver != nil {
		run := archive.NewRun(r.cfg.OwnerID, acc.Summaries, rows)
		run.ID = runID
		if err := r.archiver.WriteRun(ctx, run); err != nil {
			return result, fmt.Errorf("archive run: %w", err)
		}
	}

	return result, nil
}

// collect folds every league into an accumulator, in configured order.
func (r *Runner) collect(ctx context.Context, logger *slog.Logger) (roster.Accumulator, error) {
	var acc roster.Accumulator

	for i, leagueID := range r.cfg.Leagues {
		logger.Info("processing league", "league", i+1, "league_id", leagueID)

		rosters, err := r.fetcher.GetLeagueRosters(ctx, leagueID)
		if err != nil {
			return roster.Accumulator{}, &FetchError{Resource: "league " + leagueID, Err: err}
		}

		res := roster.Aggregate(rosters, r.cfg.OwnerID)
		if res.Found() && res.Players.Len() > 0 {
			logger.Info("found players",
				"league", i+1,
				"players", res.Players.Len(),
				"starters", res.Starters.Len(),
			)
		} else {
			logger.Info("no roster found for owner in this league", "league", i+1, "league_id", leagueID)
		}

		acc = acc.Add(res)
	}

	return acc, nil
}
