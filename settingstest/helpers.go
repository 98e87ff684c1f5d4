// Package settingstest provides fixtures for testing code that reads
// configuration through the process-wide settings accessor. It is
// exported for host applications the same way the core's test helpers
// are, and is used by this repository's own tests.
package settingstest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/galaplate/settings"
	"github.com/galaplate/settings/store"
)

// TestCase is a testify suite base that installs fresh map-backed stores
// into the global accessor before every test, so tests never see each
// other's settings and never touch the process environment.
type TestCase struct {
	suite.Suite

	Store *store.MapStore
	Conns *store.ConnMap
}

// SetupTest resets the global accessor to empty fixture stores.
func (tc *TestCase) SetupTest() {
	tc.Store = store.NewMapStore(nil)
	tc.Conns = store.NewConnMap(nil)
	settings.Initialize(tc.Store, tc.Conns)
}

// SetSetting stores a fixture app setting.
func (tc *TestCase) SetSetting(key, value string) {
	tc.Store.Set(key, value)
}

// SetConnectionString stores a fixture connection string.
func (tc *TestCase) SetConnectionString(name, dsn, provider string) {
	tc.Conns.Set(name, store.ConnectionString{Value: dsn, Provider: provider})
}

// WriteDotenv writes lines to a .env file in a temp directory and returns
// its path, for feeding store.NewEnvStore.
func WriteDotenv(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write dotenv fixture: %v", err)
	}
	return path
}

// WriteConfigDir writes the given name→YAML documents into a temp config
// directory and returns its path, for feeding store.NewLoader.
func WriteConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config fixture %s: %v", name, err)
		}
	}
	return dir
}
