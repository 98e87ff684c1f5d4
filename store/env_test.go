package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaplate/settings/store"
)

func TestEnvStoreKeyMapping(t *testing.T) {
	t.Setenv("DATABASE_POOL_SIZE", "10")

	s := store.NewEnvStore(nil)

	value, ok := s.Lookup("database.pool_size")
	require.True(t, ok)
	assert.Equal(t, "10", value)

	value, ok = s.Lookup("database-pool-size")
	require.True(t, ok)
	assert.Equal(t, "10", value)

	_, ok = s.Lookup("database.unset")
	assert.False(t, ok)
}

func TestEnvStorePrefix(t *testing.T) {
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DEBUG", "false")

	s := store.NewEnvStore(nil, store.WithPrefix("app"))

	value, ok := s.Lookup("debug")
	require.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestEnvStoreEmptyValueIsPresent(t *testing.T) {
	t.Setenv("EMPTY_SETTING", "")

	s := store.NewEnvStore(nil)

	value, ok := s.Lookup("empty_setting")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestEnvStoreLoadsDotenvFile(t *testing.T) {
	const name = "SETTINGS_DOTENV_TEST_TOKEN"
	os.Unsetenv(name)
	t.Cleanup(func() { os.Unsetenv(name) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(name+"=s3cret\n"), 0600))

	s := store.NewEnvStore([]string{path})

	value, ok := s.Lookup("settings_dotenv_test_token")
	require.True(t, ok)
	assert.Equal(t, "s3cret", value)
}

func TestEnvStoreDotenvDoesNotOverrideProcessEnv(t *testing.T) {
	const name = "SETTINGS_DOTENV_PRECEDENCE"
	t.Setenv(name, "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(name+"=from-file\n"), 0600))

	s := store.NewEnvStore([]string{path})

	value, ok := s.Lookup("settings_dotenv_precedence")
	require.True(t, ok)
	assert.Equal(t, "from-process", value)
}

func TestEnvStoreSkipsMissingDotenvFiles(t *testing.T) {
	s := store.NewEnvStore([]string{filepath.Join(t.TempDir(), "does-not-exist.env")})
	_, ok := s.Lookup("anything.at.all")
	assert.False(t, ok)
}
