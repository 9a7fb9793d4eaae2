// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/lemon-markets/lemon-go/internal/version.Version=1.0.0 \
//	                   -X github.com/lemon-markets/lemon-go/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

// Name identifies this SDK to the API.
const Name = "lemon-go"

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Name + " " + Version + " (" + Commit + ")"
}

// UserAgent returns the value sent in the User-Agent header of every
// API request.
func UserAgent() string {
	return Name + "/" + Version
}
