// Package git provides the git operations pushit sequences.
//
// It exposes them through the Operations interface with two backends:
//   - the git executable (default), run in the working directory
//   - go-git, running the same operations in-process
//
// This package should be the only place where git is invoked.
package git
