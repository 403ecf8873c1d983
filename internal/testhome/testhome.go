// Package testhome provisions throwaway home directories so tests never
// read or write the real user's Wireshark profile.
package testhome

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
)

// Home is one provisioned test home.
type Home struct {
	// Root is the generated temporary directory.
	Root string

	// HomePath stands in for the user's home (or APPDATA) directory.
	HomePath string

	// ConfDir is the Wireshark profile directory below HomePath.
	ConfDir string

	// EnvVar is the variable that was pointed at HomePath.
	EnvVar string

	// Env is a copy of the process environment with EnvVar overridden.
	Env map[string]string
}

// Environ returns Env as sorted KEY=value pairs, ready for exec.Cmd.Env.
func (h *Home) Environ() []string {
	env := make([]string, 0, len(h.Env))
	for k, v := range h.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}

// Provisioner creates test homes and renders config templates into them.
type Provisioner struct {
	fs          system.FileSystem
	goos        string
	tempDir     string
	templateDir string
	keysDir     string
	environ     func() []string

	home *Home
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithFS sets the file system.
func WithFS(fs system.FileSystem) Option {
	return func(p *Provisioner) {
		p.fs = fs
	}
}

// WithGOOS sets the target platform.
func WithGOOS(goos string) Option {
	return func(p *Provisioner) {
		p.goos = goos
	}
}

// WithTempDir sets the parent of generated homes. Empty means os.TempDir().
func WithTempDir(dir string) Option {
	return func(p *Provisioner) {
		p.tempDir = dir
	}
}

// WithEnviron sets the source of the environment that is copied.
func WithEnviron(environ func() []string) Option {
	return func(p *Provisioner) {
		p.environ = environ
	}
}

// New creates a provisioner reading templates and keys from paths.
func New(paths *config.Paths, opts ...Option) *Provisioner {
	p := &Provisioner{
		fs:          system.DefaultFS(),
		goos:        platform.Current(),
		templateDir: paths.ConfigDir,
		keysDir:     paths.KeysDir,
		environ:     os.Environ,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Home returns the most recently provisioned home, or nil.
func (p *Provisioner) Home() *Home {
	return p.home
}

// SetUp provisions a new home. Each call creates a fresh directory tree;
// the previous one is left on disk.
func (p *Provisioner) SetUp() (*Home, error) {
	root, err := p.fs.MkdirTemp(p.tempDir, config.TempPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create test directory: %w", err)
	}

	homePath := filepath.Join(root, "home")
	confDir := platform.ConfigDir(p.goos, homePath)
	if err := p.fs.MkdirAll(confDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	envVar := platform.HomeEnvVar(p.goos)
	env := environMap(p.environ())
	env[envVar] = homePath

	p.home = &Home{
		Root:     root,
		HomePath: homePath,
		ConfDir:  confDir,
		EnvVar:   envVar,
		Env:      env,
	}

	logging.Debug("provisioned test home", "root", root, "confdir", confDir, "env", envVar)
	return p.home, nil
}

// KeysDirValue returns the string substituted for the keys placeholder:
// the key directory with a trailing separator and each backslash written
// as \x5c, which uat.c decodes back to a backslash.
func (p *Provisioner) KeysDirValue() string {
	dir := p.keysDir
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.ReplaceAll(dir, `\`, `\x5c`)
}

// Render substitutes every keys placeholder in tmpl.
func (p *Provisioner) Render(tmpl string) string {
	return strings.ReplaceAll(tmpl, config.KeysPlaceholder, p.KeysDirValue())
}

// SetUpConfigFile renders the template <name>.tmpl into the current test
// home, provisioning one first if needed, and returns the written path.
// An existing file of the same name is overwritten. Read and write errors
// are returned wrapped, so errors.Is(err, fs.ErrNotExist) reports a
// missing template.
func (p *Provisioner) SetUpConfigFile(name string) (string, error) {
	if p.home == nil {
		if _, err := p.SetUp(); err != nil {
			return "", err
		}
	}

	tmplPath, err := securejoin.SecureJoin(p.templateDir, name+config.TemplateSuffix)
	if err != nil {
		return "", fmt.Errorf("invalid config name %q: %w", name, err)
	}
	data, err := p.fs.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	outPath, err := securejoin.SecureJoin(p.home.ConfDir, name)
	if err != nil {
		return "", fmt.Errorf("invalid config name %q: %w", name, err)
	}
	if err := p.fs.WriteFile(outPath, []byte(p.Render(string(data))), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", name, err)
	}

	logging.Debug("rendered config file", "template", tmplPath, "output", outPath)
	return outPath, nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
