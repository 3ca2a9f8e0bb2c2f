package widgetlist

import (
	"log/slog"
	"sync/atomic"
)

var packageLogger atomic.Pointer[slog.Logger]

func init() {
	packageLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger replaces the logger list views report layout changes to. A nil
// logger discards all records, which is also the default.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	packageLogger.Store(logger)
}

func logger() *slog.Logger {
	return packageLogger.Load()
}
