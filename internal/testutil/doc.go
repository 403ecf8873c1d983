// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Tool output captured from real builds is embedded using go:embed:
//
//	fixtures/tshark_version.txt          // every optional library
//	fixtures/tshark_version_minimal.txt  // no Lua, Kerberos, nghttp2; Gcrypt 1.6
//	fixtures/dumpcap_interfaces.txt      // Windows listing, Intel adapter at 3
//
// and exposed as TsharkVersion, TsharkVersionMinimal and DumpcapInterfaces.
// LoadFixture gives raw access.
//
// # Test Environments
//
// NewTestEnv lays out a harness directory and an empty program directory
// under t.TempDir and builds an App on top of them:
//
//	func TestRender(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    env.WriteAllTools()
//	    env.AddTemplate("ssl", "TEST_KEYS_DIRrsa.key")
//
//	    if !env.App.SetProgramPath(ctx, env.ProgramDir) {
//	        t.Fatal("tools missing")
//	    }
//	    path, err := env.App.SetUpConfigFile("ssl")
//	    // ...
//	}
//
// Tools are written as executable shell scripts, and the App's mock
// executor is primed with the same output.
package testutil
