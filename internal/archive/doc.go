// Package archive stores completed report runs in PostgreSQL.
//
// Tables:
//   - roster_report_runs: one row per run (run_id, owner_id, created_at)
//   - roster_report_leagues: the league summaries of a run, in print order
//   - roster_report_rows: the CSV rows of a run, in file order
//
// A run is written in a single transaction; rows are loaded with COPY.
// Archiving is append-only: runs are never updated.
package archive
