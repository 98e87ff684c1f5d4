package store

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/galaplate/settings/logger"
)

// EnvStore resolves settings from process environment variables. Dotted
// setting keys are mapped to conventional environment names, so
// "database.pool_size" resolves from DATABASE_POOL_SIZE (plus an optional
// prefix).
type EnvStore struct {
	prefix string
}

// EnvOption configures an EnvStore.
type EnvOption func(*EnvStore)

// WithPrefix namespaces every environment lookup, e.g. WithPrefix("APP")
// makes "debug" resolve from APP_DEBUG.
func WithPrefix(prefix string) EnvOption {
	return func(s *EnvStore) {
		s.prefix = strings.ToUpper(prefix)
	}
}

// NewEnvStore creates an environment-backed store. Each dotenv file is
// loaded into the process environment once; variables already set keep
// their values. Missing files are skipped, unreadable ones are logged and
// skipped.
func NewEnvStore(dotenvFiles []string, opts ...EnvOption) *EnvStore {
	for _, file := range dotenvFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			logger.Warn("failed to load dotenv file", "file", file, "error", err.Error())
		}
	}

	s := &EnvStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup implements Store.
func (s *EnvStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(s.envName(key))
}

func (s *EnvStore) envName(key string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	name = strings.ToUpper(name)
	if s.prefix != "" {
		name = s.prefix + "_" + name
	}
	return name
}
