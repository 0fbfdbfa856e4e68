package designer

import "log/slog"

var logger *slog.Logger

// SetLogger sets the logger used for layout and geometry diagnostics.
// Passing nil reverts to slog.Default().
func SetLogger(l *slog.Logger) {
	logger = l
}

func lg() *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
