package version

// Version is the current version of polylibrary. It's set at build time with
// ldflags.
var Version = "development"
