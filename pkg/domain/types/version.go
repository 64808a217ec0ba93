package types

// Version is the version of the release tool itself, not of the project
// being released. Overridable via -ldflags at build time.
var Version = "dev"
