package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/VMatyagin/so-rest/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns "version (commit: c, built: t)" for logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
