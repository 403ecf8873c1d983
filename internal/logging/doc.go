// Package logging provides logging utilities for wstest-env.
//
// Debug logs go through a global slog logger configured by Setup:
//
//	logging.Debug("tool not found", "tool", name, "path", path)
//	logging.Warn("settings file ignored", "path", path)
//
// Probing code logs absorbed failures at debug level, so running with
// --verbose shows why a capability or interface was not detected.
//
// User-facing messages carry a status glyph and bypass the logger:
//
//	logging.UserInfo("Test home: %s", home)
//	logging.UserSuccess("Rendered %s", path)
//	logging.UserWarning("%d tools missing", n)
//	logging.UserError("Failed to render %s: %v", name, err)
//
// UserInfo and UserSuccess write to stdout; UserWarning and UserError
// write to stderr.
package logging
