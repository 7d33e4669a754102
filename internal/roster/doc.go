// Package roster extracts one owner's players from league roster lists and
// merges them across leagues.
//
// Everything here is pure: no I/O and no logging. Callers fetch rosters,
// fold each league into an Accumulator and call Order for the final row
// sequence.
package roster
