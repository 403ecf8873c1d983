package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultSettingsFile is the settings file looked up in the working directory.
	DefaultSettingsFile = "wstest.toml"

	// TempPrefix prefixes every generated test home directory.
	TempPrefix = "wireshark-tests."

	// KeysPlaceholder is replaced by the key directory in config templates.
	KeysPlaceholder = "TEST_KEYS_DIR"

	// TemplateSuffix is appended to a config file name to find its template.
	TemplateSuffix = ".tmpl"
)

// Paths holds the harness directories, all derived from the test directory.
type Paths struct {
	TestDir     string
	BaselineDir string
	CapturesDir string
	ConfigDir   string
	KeysDir     string
	LuaDir      string
}

// PathsFor returns the directory layout rooted at testDir. The result is
// absolute so it can be written into config files read by other processes.
func PathsFor(testDir string) (*Paths, error) {
	abs, err := filepath.Abs(testDir)
	if err != nil {
		return nil, fmt.Errorf("invalid test directory %q: %w", testDir, err)
	}
	return layout(abs), nil
}

// DefaultPaths returns the layout rooted at the working directory.
func DefaultPaths() *Paths {
	paths, err := PathsFor(".")
	if err != nil {
		return layout(".")
	}
	return paths
}

func layout(dir string) *Paths {
	return &Paths{
		TestDir:     dir,
		BaselineDir: filepath.Join(dir, "baseline"),
		CapturesDir: filepath.Join(dir, "captures"),
		ConfigDir:   filepath.Join(dir, "config"),
		KeysDir:     filepath.Join(dir, "keys"),
		LuaDir:      filepath.Join(dir, "lua"),
	}
}

// Settings is the optional user configuration stored in DefaultSettingsFile.
type Settings struct {
	// ProgramPath is the directory holding the built executables.
	ProgramPath string `toml:"program_path"`

	// TestDir is the directory holding config/, keys/ and the other fixtures.
	TestDir string `toml:"test_dir"`

	// CaptureInterface overrides automatic interface selection.
	CaptureInterface string `toml:"capture_interface,omitempty"`

	// CanCapture overrides the platform default when set.
	CanCapture *bool `toml:"can_capture,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ProgramPath: ".",
		TestDir:     ".",
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.ProgramPath == "" {
		return fmt.Errorf("program_path is required")
	}
	if s.TestDir == "" {
		return fmt.Errorf("test_dir is required")
	}
	return nil
}

// LoadSettings reads settings from path. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings writes settings to path in TOML form.
func SaveSettings(path string, settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
