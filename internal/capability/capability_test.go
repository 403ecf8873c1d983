package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
)

const sampleBanner = `TShark (Wireshark) 2.6.3 (v2.6.3-0-g6a2f3c7e)

Copyright 1998-2018 Gerald Combs <gerald@wireshark.org> and contributors.

Compiled (64-bit) with libpcap, with POSIX capabilities (Linux), with libnl 3,
with GLib 2.56.2, with zlib 1.2.11, with SMI 0.4.8, with c-ares 1.14.0, with Lua
5.2.4, with GnuTLS 3.6.3, with Gcrypt 1.8.3, with MIT Kerberos, with MaxMind DB
resolver, with nghttp2 1.32.1, with LZ4, with Snappy, with libxml2 2.9.8.
`

func TestParse_Banner(t *testing.T) {
	caps := Parse(sampleBanner)

	if !caps.Lua {
		t.Error("Lua should be detected across a line break")
	}
	if !caps.Nghttp2 {
		t.Error("nghttp2 should be detected")
	}
	if !caps.Kerberos {
		t.Error("Kerberos should be detected")
	}
	if !caps.Gcrypt17 {
		t.Error("Gcrypt 1.8 should satisfy >= 1.7")
	}
	if caps.GcryptVersion != "1.8" {
		t.Errorf("GcryptVersion = %q, want %q", caps.GcryptVersion, "1.8")
	}
	if caps.Version != "2.6.3" {
		t.Errorf("Version = %q, want %q", caps.Version, "2.6.3")
	}
	if caps.Text != sampleBanner {
		t.Error("Text should hold the raw banner")
	}
}

func TestParse_Gcrypt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"1.8", "Compiled with Gcrypt 1.8.3", true},
		{"1.7", "with Gcrypt 1.7", true},
		{"1.6", "with Gcrypt 1.6.5", false},
		{"1.10 is newer than 1.7", "with Gcrypt 1.10.1", true},
		{"2.0", "with Gcrypt 2.0", true},
		{"extra spaces", "with   Gcrypt   1.9", true},
		{"no match", "with GnuTLS 3.6.3", false},
		{"no version", "with Gcrypt", false},
		{"wrong case", "with gcrypt 1.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text).Gcrypt17; got != tt.want {
				t.Errorf("Parse(%q).Gcrypt17 = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Kerberos(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"with MIT Kerberos", true},
		{"with Heimdal Kerberos", true},
		{"with  MIT  Kerberos", true},
		{"with Kerberos", false},
		{"without Kerberos", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Parse(tt.text).Kerberos; got != tt.want {
				t.Errorf("Parse(%q).Kerberos = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	caps := Parse("")
	if caps.Lua || caps.Nghttp2 || caps.Kerberos || caps.Gcrypt17 {
		t.Errorf("Parse(\"\") = %+v, want no capabilities", caps)
	}
}

func TestParse_CRLF(t *testing.T) {
	caps := Parse("Compiled with\r\nLua 5.2\r\n")
	if !caps.Lua {
		t.Error("Lua should be detected across a CRLF line break")
	}
}

func TestProbe(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("/bin/tshark --version", []byte(sampleBanner), nil)

	caps, ok := NewProber(exec).Probe(context.Background(), "/bin/tshark")
	if !ok {
		t.Fatal("Probe() = false, want true")
	}
	if !caps.Lua || !caps.Gcrypt17 {
		t.Errorf("Probe() = %+v, want Lua and Gcrypt17", caps)
	}

	cmd, _ := exec.LastCommand()
	if cmd.Name != "/bin/tshark" || len(cmd.Args) != 1 || cmd.Args[0] != "--version" {
		t.Errorf("ran %s %v, want /bin/tshark --version", cmd.Name, cmd.Args)
	}
}

func TestProbe_Failure(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("/bin/tshark --version", []byte("with Lua 5.2"), errors.New("exit status 1"))

	caps, ok := NewProber(exec).Probe(context.Background(), "/bin/tshark")
	if ok {
		t.Error("Probe() = true for failing command")
	}
	if caps != (Capabilities{}) {
		t.Errorf("Probe() = %+v, want zero Capabilities", caps)
	}
}

func TestProbe_NoPath(t *testing.T) {
	exec := system.NewMockExecutor()

	if _, ok := NewProber(exec).Probe(context.Background(), ""); ok {
		t.Error("Probe(\"\") = true, want false")
	}
	if len(exec.Commands) != 0 {
		t.Errorf("Probe(\"\") ran %d commands, want 0", len(exec.Commands))
	}
}

func TestProbe_RealMissingBinary(t *testing.T) {
	caps, ok := NewProber(nil).Probe(context.Background(), "/nonexistent/path/tshark")
	if ok {
		t.Error("Probe() = true for nonexistent binary")
	}
	if caps.Lua || caps.Nghttp2 || caps.Kerberos || caps.Gcrypt17 {
		t.Errorf("Probe() = %+v, want no capabilities", caps)
	}
}
