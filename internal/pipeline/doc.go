// Package pipeline runs one roster report end to end.
//
// Steps, strictly sequential:
//  1. Fetch each league's rosters in order and fold the owner's players into
//     a roster.Accumulator
//  2. Stop with ErrNoPlayers if nothing was found (no file is written)
//  3. Fetch the player directory once
//  4. Order, enrich and write the CSV
//  5. Print the league summary and a preview, then archive if configured
//
// Any fetch error aborts the run before the CSV is touched.
package pipeline
