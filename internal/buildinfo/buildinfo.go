package buildinfo

// Injected via ldflags for release binaries; empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
