// Package config provides the harness directory layout and settings file.
//
// # Directory Layout
//
// Paths are derived from a single test directory:
//
//	<test>/baseline  expected outputs
//	<test>/captures  capture files
//	<test>/config    *.tmpl configuration templates
//	<test>/keys      key material referenced by templates
//	<test>/lua       Lua test scripts
//
// # Settings File
//
// Settings are read from wstest.toml when present:
//
//	program_path = "/home/me/build/run"
//	test_dir = "/home/me/src/wireshark/test"
//	capture_interface = "3"
//	can_capture = true
//
// A missing file is not an error; defaults point both directories at the
// working directory. Command-line flags take precedence over the file.
package config
