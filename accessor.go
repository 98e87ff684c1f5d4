// Package settings reads typed application configuration values out of
// read-only stores: app settings by key, connection strings by name.
// Typed getters take an optional trailing default; a present value always
// wins, a missing one falls back to the default, and with neither the
// call fails with a missing-value error.
package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/galaplate/settings/conferr"
	"github.com/galaplate/settings/store"
)

// Accessor reads typed values from an application-settings store and a
// connection-string store. All methods are side-effect-free reads, safe
// for unlimited concurrent callers.
type Accessor struct {
	app   store.Store
	conns store.ConnectionStringStore
}

// New creates an Accessor over the given stores. Nil stores are replaced
// with empty ones, so a partially wired accessor still answers (with
// missing-value errors) instead of panicking.
func New(app store.Store, conns store.ConnectionStringStore) *Accessor {
	if app == nil {
		app = store.NewMapStore(nil)
	}
	if conns == nil {
		conns = store.NewConnMap(nil)
	}
	return &Accessor{app: app, conns: conns}
}

// resolve is the single missing-value policy every typed getter shares:
// a present, non-blank value wins; otherwise the caller either declared a
// default or gets a missing-value error. Blank values count as absent.
func (a *Accessor) resolve(key string, hasDefault bool) (value string, found bool, err error) {
	value, ok := a.app.Lookup(key)
	if ok && strings.TrimSpace(value) != "" {
		return value, true, nil
	}
	if hasDefault {
		return "", false, nil
	}
	return "", false, conferr.Missing("setting %q has no value", key)
}

// Get returns the raw setting value. Absent keys and blank values are
// both failures: a setting that exists but holds nothing is not usable.
func (a *Accessor) Get(key string) (string, error) {
	value, _, err := a.resolve(key, false)
	return value, err
}

// GetDefault returns the stored value when present and non-blank,
// otherwise def. def may itself be empty, meaning "no value".
func (a *Accessor) GetDefault(key, def string) string {
	value, found, _ := a.resolve(key, true)
	if !found {
		return def
	}
	return value
}

// GetBool reads a boolean setting.
func (a *Accessor) GetBool(key string, def ...bool) (bool, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return false, err
	}
	if !found {
		return def[0], nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, conferr.ParseWrap(err, "setting %q is not a boolean", key)
	}
	return value, nil
}

// GetInt reads an integer setting.
func (a *Accessor) GetInt(key string, def ...int) (int, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return 0, err
	}
	if !found {
		return def[0], nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, conferr.ParseWrap(err, "setting %q is not an integer", key)
	}
	return value, nil
}

// GetInt64 reads a 64-bit integer setting.
func (a *Accessor) GetInt64(key string, def ...int64) (int64, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return 0, err
	}
	if !found {
		return def[0], nil
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, conferr.ParseWrap(err, "setting %q is not an integer", key)
	}
	return value, nil
}

// GetFloat64 reads a floating-point setting.
func (a *Accessor) GetFloat64(key string, def ...float64) (float64, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return 0, err
	}
	if !found {
		return def[0], nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, conferr.ParseWrap(err, "setting %q is not a number", key)
	}
	return value, nil
}

// timeLayouts are tried in order by GetTime. RFC 3339 is the canonical
// form; the rest cover the date formats config files actually contain.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// GetTime reads a timestamp setting.
func (a *Accessor) GetTime(key string, def ...time.Time) (time.Time, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return def[0], nil
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if value, err := time.Parse(layout, raw); err == nil {
			return value, nil
		}
	}
	return time.Time{}, conferr.Parse("setting %q is not a timestamp", key)
}

// GetDuration reads a duration setting in time.ParseDuration syntax.
func (a *Accessor) GetDuration(key string, def ...time.Duration) (time.Duration, error) {
	raw, found, err := a.resolve(key, len(def) > 0)
	if err != nil {
		return 0, err
	}
	if !found {
		return def[0], nil
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, conferr.ParseWrap(err, "setting %q is not a duration", key)
	}
	return value, nil
}

type sliceConfig struct {
	delimiter string
	keepEmpty bool
}

// SliceOption configures GetSlice.
type SliceOption func(*sliceConfig)

// WithDelimiter splits on d instead of the default comma.
func WithDelimiter(d string) SliceOption {
	return func(c *sliceConfig) {
		c.delimiter = d
	}
}

// KeepEmptyEntries keeps empty elements produced by adjacent delimiters
// instead of dropping them.
func KeepEmptyEntries() SliceOption {
	return func(c *sliceConfig) {
		c.keepEmpty = true
	}
}

// GetSlice reads a delimited setting as a slice. A value without the
// delimiter yields a single-element slice holding the whole value. Absent
// or blank values fail the same way Get does.
func (a *Accessor) GetSlice(key string, opts ...SliceOption) ([]string, error) {
	cfg := sliceConfig{delimiter: ","}
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := a.Get(key)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(raw, cfg.delimiter) {
		return []string{raw}, nil
	}

	parts := strings.Split(raw, cfg.delimiter)
	if cfg.keepEmpty {
		return parts, nil
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out, nil
}

// GetConnectionString returns the named connection string. When name is
// not configured and a fallback name is given, the fallback is tried
// once. A configured entry whose value is blank fails with its own
// missing-value message; the fallback does not apply to that case.
func (a *Accessor) GetConnectionString(name string, fallback ...string) (string, error) {
	entry, ok := a.conns.LookupConnectionString(name)
	if !ok {
		if len(fallback) > 0 && fallback[0] != "" {
			return a.GetConnectionString(fallback[0])
		}
		return "", conferr.Missing("connection string %q is not configured", name)
	}
	if strings.TrimSpace(entry.Value) == "" {
		return "", conferr.Missing("connection string %q is empty", name)
	}
	return entry.Value, nil
}
