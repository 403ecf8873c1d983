// Package capture decides whether live capture tests can run and which
// interface they should use.
package capture

import (
	"bufio"
	"context"
	"regexp"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
)

// defaultInterfaceRegex matches a "dumpcap -D" line naming a physical or
// virtual Ethernet adapter.
var defaultInterfaceRegex = regexp.MustCompile(`(\d+)\..*(Ethernet|Network Connection|VMware|Intel)`)

// listingRegex splits a "dumpcap -D" line into index, name and the
// optional parenthesized description.
var listingRegex = regexp.MustCompile(`^\s*(\d+)\.\s+(\S+)(?:\s+\((.*)\))?\s*$`)

// Settings holds the capture facts for a run.
type Settings struct {
	// Interface is the dumpcap interface index or name; empty when unset.
	Interface string

	// CanCapture reports whether the user is allowed to capture.
	CanCapture bool
}

// DefaultSettings returns the settings a run starts with on goos.
func DefaultSettings(goos string) Settings {
	return Settings{CanCapture: platform.DefaultCanCapture(goos)}
}

// Available reports whether capture tests can run.
func (s Settings) Available() bool {
	return s.CanCapture && s.Interface != ""
}

// SetInterface selects iface and marks capture as possible.
func (s *Settings) SetInterface(iface string) {
	s.Interface = iface
	s.CanCapture = true
}

// MatchInterface returns the index from a single listing line if it names a
// suitable default interface.
func MatchInterface(line string) (string, bool) {
	m := defaultInterfaceRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SelectFromListing returns the index of the first suitable interface.
func SelectFromListing(output string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if idx, ok := MatchInterface(scanner.Text()); ok {
			return idx, true
		}
	}
	return "", false
}

// Interface is one entry of a "dumpcap -D" listing.
type Interface struct {
	Index       string
	Name        string
	Description string
}

// Label returns the description if there is one, otherwise the name.
func (i Interface) Label() string {
	if i.Description != "" {
		return i.Description
	}
	return i.Name
}

// ParseListing parses every well-formed line of "dumpcap -D" output.
func ParseListing(output string) []Interface {
	var ifaces []Interface
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		m := listingRegex.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		ifaces = append(ifaces, Interface{Index: m[1], Name: m[2], Description: m[3]})
	}
	return ifaces
}

// Selector runs dumpcap to list interfaces.
type Selector struct {
	exec system.CommandExecutor
	goos string
}

// NewSelector creates a selector. A nil executor runs real processes and an
// empty goos means the running platform.
func NewSelector(exec system.CommandExecutor, goos string) *Selector {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	if goos == "" {
		goos = platform.Current()
	}
	return &Selector{exec: exec, goos: goos}
}

// List runs "<dumpcapPath> -D" and parses the result.
func (s *Selector) List(ctx context.Context, dumpcapPath string) ([]Interface, error) {
	out, err := s.exec.Execute(ctx, dumpcapPath, "-D")
	if err != nil {
		return nil, err
	}
	return ParseListing(string(out)), nil
}

// Select picks a default interface. It only does so on Windows, when
// current has no interface yet and dumpcap was located; in every other
// case, and when dumpcap fails, it returns current unchanged.
func (s *Selector) Select(ctx context.Context, dumpcapPath string, current Settings) Settings {
	if current.Interface != "" || dumpcapPath == "" || s.goos != platform.Windows {
		return current
	}

	out, err := s.exec.Execute(ctx, dumpcapPath, "-D")
	if err != nil {
		logging.Debug("interface listing failed", "path", dumpcapPath, "error", err)
		return current
	}

	if idx, ok := SelectFromListing(string(out)); ok {
		logging.Debug("selected default capture interface", "interface", idx)
		current.Interface = idx
	}
	return current
}
