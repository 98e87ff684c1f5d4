package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/galaplate/settings/logger"
)

// Loader populates a MapStore and a ConnMap from YAML files in a config
// directory. Each file contributes settings under its own name, so
// app.yaml's "debug" key becomes the setting "app.debug". Nested mappings
// are flattened to dot-notation keys; that is the shape the accessor
// looks keys up by, there is no hierarchical merging across files.
//
// A top-level "connections" mapping in any file is consumed into the
// connection-string store instead of the settings store:
//
//	connections:
//	  main:
//	    dsn: postgres://localhost/app
//	    provider: postgres
type Loader struct {
	configPath string
}

// NewLoader creates a loader for the given config directory.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load reads every .yaml/.yml file in the config directory.
func (l *Loader) Load() (*MapStore, *ConnMap, error) {
	settings := NewMapStore(nil)
	conns := NewConnMap(nil)

	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("config directory does not exist: %s", l.configPath)
	}

	files, err := os.ReadDir(l.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if !strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml") {
			continue
		}

		filename := filepath.Join(l.configPath, file.Name())
		if err := l.loadFile(filename, settings, conns); err != nil {
			return nil, nil, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}

		logger.Debug("config file loaded", "file", filename)
	}

	return settings, conns, nil
}

// loadFile loads a single YAML file, expanding env variables first.
func (l *Loader) loadFile(filename string, settings *MapStore, conns *ConnMap) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	expanded := expandEnvVariables(string(content))

	var data map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &data); err != nil {
		return err
	}

	if section, ok := data["connections"]; ok {
		if err := loadConnections(section, conns); err != nil {
			return err
		}
		delete(data, "connections")
	}

	base := filepath.Base(filename)
	namespace := strings.TrimSuffix(base, filepath.Ext(base))

	flat := make(map[string]string)
	flatten(namespace, data, flat)
	for key, value := range flat {
		settings.Set(key, value)
	}

	return nil
}

// loadConnections reads a "connections" mapping of name → {dsn, provider}.
func loadConnections(section any, conns *ConnMap) error {
	mapping, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("connections section must be a mapping, got %T", section)
	}

	for name, raw := range mapping {
		entry, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("connection %q must be a mapping, got %T", name, raw)
		}

		conn := ConnectionString{}
		if dsn, ok := entry["dsn"]; ok {
			conn.Value = fmt.Sprintf("%v", dsn)
		}
		if provider, ok := entry["provider"]; ok {
			conn.Provider = fmt.Sprintf("%v", provider)
		}
		conns.Set(name, conn)
	}

	return nil
}

// expandEnvVariables replaces ${VAR_NAME} or ${VAR_NAME:default} with
// values from the process environment.
func expandEnvVariables(content string) string {
	result := content
	start := 0

	for {
		idx := strings.Index(result[start:], "${")
		if idx == -1 {
			break
		}
		idx += start

		endIdx := strings.Index(result[idx:], "}")
		if endIdx == -1 {
			break
		}
		endIdx += idx

		varPart := result[idx+2 : endIdx]
		var varName, defaultValue string

		if before, after, ok := strings.Cut(varPart, ":"); ok {
			varName = before
			defaultValue = after
		} else {
			varName = varPart
		}

		value := os.Getenv(varName)
		if value == "" {
			value = defaultValue
		}

		result = result[:idx] + value + result[endIdx+1:]
		start = idx + len(value)
	}

	return result
}

// flatten writes value into out under dot-notation keys rooted at prefix.
// Scalars are stringified; sequences of scalars are joined with commas so
// the accessor's slice getter can split them back apart.
func flatten(prefix string, value any, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			flatten(prefix+"."+key, val, out)
		}
	case map[any]any:
		for key, val := range v {
			flatten(prefix+"."+fmt.Sprintf("%v", key), val, out)
		}
	case []any:
		parts := make([]string, len(v))
		for i, val := range v {
			parts[i] = fmt.Sprintf("%v", val)
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprintf("%v", v)
	}
}

// Keys returns the sorted setting keys currently held by a MapStore.
// Useful for diagnostics when a lookup unexpectedly misses.
func Keys(s *MapStore) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
