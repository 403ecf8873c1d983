package testutil

import (
	"embed"
)

//go:embed fixtures/*.txt
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

func mustFixture(name string) string {
	data, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// TsharkVersion returns "tshark --version" output from a build with every
// optional library.
func TsharkVersion() string {
	return mustFixture("tshark_version.txt")
}

// TsharkVersionMinimal returns "tshark --version" output from a build
// without Lua, Kerberos or nghttp2 and with Gcrypt 1.6.
func TsharkVersionMinimal() string {
	return mustFixture("tshark_version_minimal.txt")
}

// DumpcapInterfaces returns "dumpcap -D" output from a Windows host whose
// first suitable interface is 3.
func DumpcapInterfaces() string {
	return mustFixture("dumpcap_interfaces.txt")
}
