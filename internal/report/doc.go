// Package report writes the roster CSV and prints the end-of-run summary.
//
// The CSV header is fixed:
//
//	player_id,search_full_name,injury_body_part,injury_status,age,position,
//	practice_description,years_exp,fantasy_positions,yahoo_id,rotoworld_id,
//	stats_id,team,is_starter
//
// Files are replaced atomically: rows are written to a temporary file in the
// destination directory and renamed over the target.
package report
