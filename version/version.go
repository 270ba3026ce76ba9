package version

// Version is the current release of chng.
var Version = "0.1.0"
