// Package capability detects optional features compiled into tshark by
// matching the text printed by "tshark --version".
package capability

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
)

// MinGcrypt is the oldest libgcrypt release that counts as Gcrypt17.
const MinGcrypt = "1.7"

var (
	luaRegex      = regexp.MustCompile(`with +Lua`)
	nghttp2Regex  = regexp.MustCompile(`with +nghttp2`)
	kerberosRegex = regexp.MustCompile(`with +(MIT|Heimdal) +Kerberos`)
	gcryptRegex   = regexp.MustCompile(`with +Gcrypt +([0-9]+\.[0-9]+)`)
	versionRegex  = regexp.MustCompile(`\(Wireshark\) +([0-9][^\s]*)`)

	gcryptConstraint = mustConstraint(">= " + MinGcrypt)
)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Capabilities holds the features detected in a version banner.
// The zero value means nothing was detected.
type Capabilities struct {
	Lua      bool
	Nghttp2  bool
	Kerberos bool
	Gcrypt17 bool

	// GcryptVersion is the libgcrypt version as printed, or empty.
	GcryptVersion string

	// Version is the program's own version, or empty if not printed.
	Version string

	// Text is the raw banner the flags were derived from.
	Text string
}

// Parse derives capabilities from version output. Lines are joined with a
// single space so that a marker wrapped across lines still matches.
func Parse(output string) Capabilities {
	text := joinLines(output)
	caps := Capabilities{
		Lua:      luaRegex.MatchString(text),
		Nghttp2:  nghttp2Regex.MatchString(text),
		Kerberos: kerberosRegex.MatchString(text),
		Text:     output,
	}

	if m := versionRegex.FindStringSubmatch(text); m != nil {
		caps.Version = m[1]
	}

	if m := gcryptRegex.FindStringSubmatch(text); m != nil {
		caps.GcryptVersion = m[1]
		caps.Gcrypt17 = atLeastMinGcrypt(m[1])
	}

	return caps
}

// atLeastMinGcrypt compares major.minor numerically, so 1.10 is newer
// than 1.7. A version that does not parse counts as too old.
func atLeastMinGcrypt(v string) bool {
	ver, err := semver.NewVersion(v)
	if err != nil {
		logging.Debug("unparseable gcrypt version", "version", v, "error", err)
		return false
	}
	return gcryptConstraint.Check(ver)
}

func joinLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Join(strings.Split(strings.TrimRight(s, "\n"), "\n"), " ")
}

// Prober runs the version query.
type Prober struct {
	exec system.CommandExecutor
}

// NewProber creates a prober. A nil executor runs real processes.
func NewProber(exec system.CommandExecutor) *Prober {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Prober{exec: exec}
}

// Probe runs "<tsharkPath> --version" and parses its output. When the path
// is empty or the command fails for any reason it returns the zero
// Capabilities and false.
func (p *Prober) Probe(ctx context.Context, tsharkPath string) (Capabilities, bool) {
	if tsharkPath == "" {
		logging.Debug("skipping capability probe, tshark not located")
		return Capabilities{}, false
	}

	out, err := p.exec.Execute(ctx, tsharkPath, "--version")
	if err != nil {
		logging.Debug("capability probe failed", "path", tsharkPath, "error", err)
		return Capabilities{}, false
	}

	caps := Parse(string(out))
	logging.Debug("probed capabilities",
		"version", caps.Version,
		"lua", caps.Lua,
		"nghttp2", caps.Nghttp2,
		"kerberos", caps.Kerberos,
		"gcrypt", caps.GcryptVersion,
	)
	return caps, true
}
