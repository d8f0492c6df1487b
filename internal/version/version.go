package version

// Overridden at build time via -ldflags "-X froggy/internal/version.Version=...".
var (
	AppName = "Froggy"
	Version = "dev"
)
