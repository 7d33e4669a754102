// Package model defines the domain types shared by the roster report pipeline.
//
// Conventions:
//   - Player and owner identifiers are opaque strings exactly as Sleeper returns them
//   - Roster token lists are raw: team-defense tokens (e.g. "KC") are filtered downstream
//   - Optional profile fields use Opt so "absent" is distinct from a real value
//   - Numeric roster settings default to zero when Sleeper omits them
package model
