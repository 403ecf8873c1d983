// Package tools locates the Wireshark executables a test run depends on.
package tools

import (
	"path/filepath"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
)

// Name identifies one of the harness executables.
type Name string

const (
	Capinfos  Name = "capinfos"
	Dumpcap   Name = "dumpcap"
	Mergecap  Name = "mergecap"
	Rawshark  Name = "rawshark"
	Tshark    Name = "tshark"
	Wireshark Name = "wireshark"
)

// All lists every tool the locator looks for, in lookup order.
var All = []Name{Capinfos, Dumpcap, Mergecap, Rawshark, Tshark, Wireshark}

// Registry maps each tool to its resolved path. A tool that was not found
// has no entry.
type Registry struct {
	// Dir is the directory the tools were looked up in.
	Dir string

	paths map[Name]string
}

// NewRegistry returns an empty registry for dir.
func NewRegistry(dir string) *Registry {
	return &Registry{Dir: dir, paths: make(map[Name]string)}
}

// Set records path for name.
func (r *Registry) Set(name Name, path string) {
	r.paths[name] = path
}

// Path returns the resolved path of name and whether it was found.
// Resolved paths stay valid even when other tools are missing.
func (r *Registry) Path(name Name) (string, bool) {
	if r == nil {
		return "", false
	}
	p, ok := r.paths[name]
	return p, ok
}

// Missing returns the tools that were not found, in lookup order.
func (r *Registry) Missing() []Name {
	var missing []Name
	for _, name := range All {
		if _, ok := r.Path(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Found returns the number of resolved tools.
func (r *Registry) Found() int {
	if r == nil {
		return 0
	}
	return len(r.paths)
}

// Complete reports whether every tool was found.
func (r *Registry) Complete() bool {
	return len(r.Missing()) == 0
}

// Locator finds tools in a directory.
type Locator struct {
	fs   system.FileSystem
	goos string
}

// NewLocator creates a locator. A nil fs uses the real file system and an
// empty goos means the running platform.
func NewLocator(fs system.FileSystem, goos string) *Locator {
	if fs == nil {
		fs = system.DefaultFS()
	}
	if goos == "" {
		goos = platform.Current()
	}
	return &Locator{fs: fs, goos: goos}
}

// Locate checks dir for every tool in All. Missing or non-executable tools
// are left out of the registry; the returned bool is true only if all of
// them were found.
func (l *Locator) Locate(dir string) (*Registry, bool) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	reg := NewRegistry(dir)
	suffix := platform.ExeSuffix(l.goos)
	for _, name := range All {
		path := filepath.Join(dir, string(name)+suffix)
		if !l.fs.Exists(path) || !l.fs.IsExecutable(path) {
			logging.Debug("tool not found", "tool", name, "path", path)
			continue
		}
		reg.Set(name, path)
	}

	logging.Debug("located tools", "dir", dir, "found", reg.Found(), "missing", reg.Missing())
	return reg, reg.Complete()
}
