package tui

import "os"

// GetLogFilePath returns the path of the debug log, or "" when debug file
// logging is off. It is enabled by setting PUSHIT_LOG_FILE.
func GetLogFilePath() string {
	return os.Getenv("PUSHIT_LOG_FILE")
}
