package app

// Build metadata, overridden at link time.
var (
	Name      = "notes-service"
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)
