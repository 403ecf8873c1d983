// Package app provides the environment context shared by every caller of
// the test harness.
package app

import (
	"context"
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capability"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capture"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/testhome"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tools"
)

// App holds the facts discovered about the test environment.
// It is written by SetProgramPath and the setters and is read-only for
// everyone else; it is not safe for concurrent mutation.
type App struct {
	// Paths holds the harness directories
	Paths *config.Paths

	// GOOS is the platform the environment is prepared for
	GOOS string

	// Tools holds the located executables
	Tools *tools.Registry

	// Capabilities holds the features detected in tshark
	Capabilities capability.Capabilities

	// Capture holds the capture interface and permission
	Capture capture.Settings

	fs          system.FileSystem
	exec        system.CommandExecutor
	tempDir     string
	environ     func() []string
	provisioner *testhome.Provisioner
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithGOOS prepares the environment for another platform
func WithGOOS(goos string) Option {
	return func(a *App) {
		a.GOOS = goos
	}
}

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.exec = exec
	}
}

// WithTempDir sets the parent directory of generated test homes
func WithTempDir(dir string) Option {
	return func(a *App) {
		a.tempDir = dir
	}
}

// WithEnviron sets the environment copied into test homes
func WithEnviron(environ func() []string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// New creates a new App with the given options. Nothing is probed until
// SetProgramPath is called.
func New(opts ...Option) *App {
	app := &App{
		GOOS: platform.Current(),
		fs:   system.DefaultFS(),
		exec: system.DefaultExecutor(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Paths == nil {
		app.Paths = config.DefaultPaths()
	}
	app.Capture = capture.DefaultSettings(app.GOOS)
	app.Tools = tools.NewRegistry("")

	provOpts := []testhome.Option{
		testhome.WithFS(app.fs),
		testhome.WithGOOS(app.GOOS),
		testhome.WithTempDir(app.tempDir),
	}
	if app.environ != nil {
		provOpts = append(provOpts, testhome.WithEnviron(app.environ))
	}
	app.provisioner = testhome.New(app.Paths, provOpts...)

	return app
}

// SetProgramPath locates the tools in dir, then probes tshark and picks a
// default capture interface. It returns true only if every tool was found.
// Paths of the tools that were found are usable either way.
func (a *App) SetProgramPath(ctx context.Context, dir string) bool {
	reg, complete := tools.NewLocator(a.fs, a.GOOS).Locate(dir)
	a.Tools = reg

	tshark, _ := reg.Path(tools.Tshark)
	a.Capabilities, _ = capability.NewProber(a.exec).Probe(ctx, tshark)

	dumpcap, _ := reg.Path(tools.Dumpcap)
	a.Capture = capture.NewSelector(a.exec, a.GOOS).Select(ctx, dumpcap, a.Capture)

	log := logging.With("dir", reg.Dir)
	if complete {
		log.Info("located all tools", "version", a.Capabilities.Version)
	} else {
		log.Warn("some tools are missing", "found", reg.Found(), "missing", reg.Missing())
	}
	logging.Debug("capture settings",
		"interface", a.Capture.Interface,
		"can_capture", a.Capture.CanCapture,
	)
	return complete
}

// ToolPath returns the located path of name.
func (a *App) ToolPath(name tools.Name) (string, bool) {
	return a.Tools.Path(name)
}

// SetCaptureInterface selects iface and marks capture as possible.
func (a *App) SetCaptureInterface(iface string) {
	a.Capture.SetInterface(iface)
}

// SetCanCapture overrides whether capture is permitted.
func (a *App) SetCanCapture(canCapture bool) {
	a.Capture.CanCapture = canCapture
}

// CanCapture reports whether live capture tests can run.
func (a *App) CanCapture() bool {
	return a.Capture.Available()
}

// CanMkfifo reports whether named pipes are supported.
func (a *App) CanMkfifo() bool {
	return platform.CanMkfifo(a.GOOS)
}

// CanDisplay reports whether the GUI can be started.
func (a *App) CanDisplay() bool {
	return platform.CanDisplay(a.GOOS)
}

// PingCommand returns the platform's traffic-generating ping command.
func (a *App) PingCommand() []string {
	return platform.PingCommand(a.GOOS)
}

// ListInterfaces runs dumpcap to list capture interfaces.
func (a *App) ListInterfaces(ctx context.Context) ([]capture.Interface, error) {
	dumpcap, ok := a.Tools.Path(tools.Dumpcap)
	if !ok {
		return nil, fmt.Errorf("dumpcap not found in %q", a.Tools.Dir)
	}
	return capture.NewSelector(a.exec, a.GOOS).List(ctx, dumpcap)
}

// SetUpTestEnvironment provisions a new test home.
func (a *App) SetUpTestEnvironment() (*testhome.Home, error) {
	return a.provisioner.SetUp()
}

// TestHome returns the current test home, or nil before one is provisioned.
func (a *App) TestHome() *testhome.Home {
	return a.provisioner.Home()
}

// TestEnvironment returns the environment for running tools against the
// current test home, or nil before one is provisioned.
func (a *App) TestEnvironment() map[string]string {
	home := a.provisioner.Home()
	if home == nil {
		return nil
	}
	return home.Env
}

// SetUpConfigFile renders config/<name>.tmpl into the test home,
// provisioning the home first if needed.
func (a *App) SetUpConfigFile(name string) (string, error) {
	return a.provisioner.SetUpConfigFile(name)
}
