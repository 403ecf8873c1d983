// Package app provides the environment context for wstest-env.
//
// An App replaces process-wide state: it is built once, filled in by
// SetProgramPath, and then passed to whatever needs tool paths, capability
// flags or a test home.
//
// # Creating an App
//
//	env := app.New(app.WithPaths(paths))
//	if !env.SetProgramPath(ctx, "/build/run") {
//	    // some tools are missing; env.Tools.Missing() lists them
//	}
//
// For tests, inject mocks and a target platform:
//
//	env := app.New(
//	    app.WithFS(mockFS),
//	    app.WithExecutor(mockExec),
//	    app.WithGOOS(platform.Windows),
//	)
//
// # Bootstrap Order
//
// SetProgramPath locates tools first, then probes tshark for capabilities
// and finally selects a capture interface with dumpcap. Probing failures
// leave the corresponding facts unset. The test home is provisioned lazily
// by SetUpConfigFile, or explicitly by SetUpTestEnvironment.
//
// # Partial Tool Sets
//
// SetProgramPath returns false when any tool is missing, but the tools it
// did find are recorded and usable. Callers that need a specific tool
// should check ToolPath rather than the aggregate result.
package app
