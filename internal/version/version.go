// Package version holds build metadata for the rosterreport binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/rickgao/sleeper-roster/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/sleeper-roster/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/sleeper-roster/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/rosterreport
package version

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the short git hash.
	Commit = "unknown"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// String renders the line printed by -version.
func String() string {
	return "rosterreport " + Version + " (" + Commit + ") built " + BuildTime
}
