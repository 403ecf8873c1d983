// Package health summarizes how usable a test environment is.
//
// # Health Status
//
// Readiness is represented by Status:
//
//	StatusReady    - every tool was located
//	StatusPartial  - some tools were located
//	StatusUnusable - no tool was located
//
// Capability flags and capture availability do not affect the status;
// tests that need them skip themselves.
//
// # Check Functions
//
//	env := app.New()
//	env.SetProgramPath(ctx, dir)
//
//	result := health.Check(env)
//	// result.Tools, .Capabilities, .CaptureAvailable, .PingCommand
//
//	status := health.GetSummary(env)
package health
