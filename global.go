package settings

import (
	"sync"
	"time"

	"github.com/galaplate/settings/store"
)

// globalAccessor is the process-wide accessor the package-level helpers
// read through. It is installed once at startup, before request logic
// runs, and is read-only thereafter.
var (
	globalMu       sync.RWMutex
	globalAccessor *Accessor
)

// Initialize installs the process-wide accessor. Calling it again
// replaces the previous instance; tests use that to swap fixture stores
// in and out.
func Initialize(app store.Store, conns store.ConnectionStringStore) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalAccessor = New(app, conns)
}

// Default returns the process-wide accessor. If the host application
// never called Initialize, an empty accessor is created so every lookup
// fails with a missing-value error rather than a panic.
func Default() *Accessor {
	globalMu.RLock()
	a := globalAccessor
	globalMu.RUnlock()
	if a != nil {
		return a
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalAccessor == nil {
		globalAccessor = New(nil, nil)
	}
	return globalAccessor
}

// Get retrieves a setting through the process-wide accessor.
// Example: settings.Get("database.host")
func Get(key string) (string, error) {
	return Default().Get(key)
}

// GetDefault retrieves a setting with a string fallback.
// Example: settings.GetDefault("app.name", "galaplate")
func GetDefault(key, def string) string {
	return Default().GetDefault(key, def)
}

// GetBool retrieves a boolean setting.
// Example: settings.GetBool("app.debug", false)
func GetBool(key string, def ...bool) (bool, error) {
	return Default().GetBool(key, def...)
}

// GetInt retrieves an integer setting.
// Example: settings.GetInt("database.port", 5432)
func GetInt(key string, def ...int) (int, error) {
	return Default().GetInt(key, def...)
}

// GetInt64 retrieves a 64-bit integer setting.
func GetInt64(key string, def ...int64) (int64, error) {
	return Default().GetInt64(key, def...)
}

// GetFloat64 retrieves a floating-point setting.
func GetFloat64(key string, def ...float64) (float64, error) {
	return Default().GetFloat64(key, def...)
}

// GetTime retrieves a timestamp setting.
func GetTime(key string, def ...time.Time) (time.Time, error) {
	return Default().GetTime(key, def...)
}

// GetDuration retrieves a duration setting.
func GetDuration(key string, def ...time.Duration) (time.Duration, error) {
	return Default().GetDuration(key, def...)
}

// GetSlice retrieves a delimited setting as a slice.
// Example: settings.GetSlice("cors.origins")
func GetSlice(key string, opts ...SliceOption) ([]string, error) {
	return Default().GetSlice(key, opts...)
}

// GetConnectionString retrieves a connection string by name, with an
// optional fallback name.
// Example: settings.GetConnectionString("main", "default")
func GetConnectionString(name string, fallback ...string) (string, error) {
	return Default().GetConnectionString(name, fallback...)
}

// Bind populates dst from settings under prefix through the process-wide
// accessor, then validates it.
func Bind(prefix string, dst any) error {
	return Default().Bind(prefix, dst)
}
