package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr so it never mixes with accepted values on stdout.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "panelinput",
})

// SetDebug toggles debug-level output (completer failures, config resolution).
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
