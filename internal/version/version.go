package version

// AppVersion is overridden at build time with
// -ldflags "-X panelinput/internal/version.AppVersion=x.y.z".
var AppVersion = "0.1.0"
