package app

import "fmt"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/meowdict/meowdict/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for --version output.
func BuildVersion() string {
	return fmt.Sprintf("meowdict %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
