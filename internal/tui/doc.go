// Package tui provides the terminal side of pushit.
//
// It handles:
//   - Interactive prompts (survey on a terminal, plain line reading otherwise)
//   - Console and debug-file logging (Splog)
//   - Terminal detection
package tui
