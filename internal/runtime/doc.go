// Package runtime provides the execution context for pushit commands.
//
// It wires configuration, the logger, the git backend, the prompter and the
// failure log for one run started in a working directory.
package runtime
