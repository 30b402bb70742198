// Package logging provides logging utilities for rrepo and rdev.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("running script", "script", script, "dir", dir)
//	logging.Warn("config file unreadable", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Building repository index...")
//	logging.UserSuccess("Repository %s initialized", path)
//	logging.UserWarning("Package %s already present, replacing", name)
//	logging.UserError("R check failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// The R subprocess's own stdout and stderr are never captured or reformatted;
// they stream through to the terminal untouched.
package logging
