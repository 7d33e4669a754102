// Package api provides a read-only client for the public Sleeper REST API.
//
// Endpoints used:
//   - GET /league/{league_id}/rosters: every roster in a league
//   - GET /players/{sport}: the full player directory keyed by player id
//
// Base URL: https://api.sleeper.app/v1
//
// The client performs a single attempt per request. Transport failures and
// non-2xx responses are returned as errors; callers decide whether to abort.
package api
