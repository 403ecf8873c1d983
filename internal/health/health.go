package health

import (
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capability"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tools"
)

// Status represents the readiness of a test environment
type Status string

const (
	StatusReady    Status = "ready"
	StatusPartial  Status = "partial"
	StatusUnusable Status = "unusable"
)

// ToolStatus is the lookup result for one tool
type ToolStatus struct {
	Name  tools.Name
	Path  string
	Found bool
}

// CheckResult contains the results of health checks
type CheckResult struct {
	ProgramDir       string
	Tools            []ToolStatus
	Capabilities     capability.Capabilities
	CaptureInterface string
	CanCapture       bool
	CaptureAvailable bool
	CanMkfifo        bool
	CanDisplay       bool
	PingCommand      []string
}

// Found returns the number of located tools.
func (r *CheckResult) Found() int {
	n := 0
	for _, t := range r.Tools {
		if t.Found {
			n++
		}
	}
	return n
}

// Missing returns the names of tools that were not located.
func (r *CheckResult) Missing() []tools.Name {
	var missing []tools.Name
	for _, t := range r.Tools {
		if !t.Found {
			missing = append(missing, t.Name)
		}
	}
	return missing
}

// Status derives the summary status from the tool results.
func (r *CheckResult) Status() Status {
	switch r.Found() {
	case 0:
		return StatusUnusable
	case len(r.Tools):
		return StatusReady
	default:
		return StatusPartial
	}
}

// Check collects everything the App knows about the environment. It runs
// no commands; call SetProgramPath on the App first.
func Check(a *app.App) *CheckResult {
	result := &CheckResult{
		ProgramDir:       a.Tools.Dir,
		Capabilities:     a.Capabilities,
		CaptureInterface: a.Capture.Interface,
		CanCapture:       a.Capture.CanCapture,
		CaptureAvailable: a.CanCapture(),
		CanMkfifo:        a.CanMkfifo(),
		CanDisplay:       a.CanDisplay(),
		PingCommand:      a.PingCommand(),
	}

	for _, name := range tools.All {
		path, ok := a.ToolPath(name)
		result.Tools = append(result.Tools, ToolStatus{Name: name, Path: path, Found: ok})
	}

	return result
}

// GetSummary returns a summary health status.
func GetSummary(a *app.App) Status {
	return Check(a).Status()
}
