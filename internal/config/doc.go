// Package config loads pushit configuration.
//
// Settings come from, in increasing precedence:
//   - Built-in defaults
//   - A YAML file (.pushit.yml in the working directory, or --config)
//   - PUSHIT_* environment variables
package config
