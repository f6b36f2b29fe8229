// Package actions provides the business logic behind the pushit command.
//
// The push action (Orchestrator) runs a fixed pipeline:
//   - prompt for a commit message until a non-empty one is given
//   - prompt for a branch, falling back to the configured default
//   - stage all changes, commit, push with upstream tracking
//
// Key patterns:
//   - Git access goes through git.Operations, so tests can use a fake
//   - The first failed step stops the run and is appended to the failure log
//   - Interruptions stop the run without touching the failure log
//
// Dependencies:
//   - git: The three operations
//   - tui: Prompts and console output
//   - failurelog: The append-only logs.txt
package actions
