// Package xviper wraps spf13/viper for the settings of transitive-sbom.
// Values come from command line flags, TRANSITIVE_SBOM_* environment
// variables and an optional YAML settings file, in that order.
package xviper

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/shlex"
	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pathlib"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	lock   sync.Mutex
	config *viper.Viper
)

func init() {
	Reset()
}

// Reset throws away every setting and binding.
func Reset() {
	lock.Lock()
	defer lock.Unlock()

	config = viper.New()
	config.SetEnvPrefix(common.EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	config.AutomaticEnv()
}

// Load reads given settings file. An empty filename means the default
// settings file, which is optional.
func Load(filename string) error {
	lock.Lock()
	defer lock.Unlock()

	explicit := len(filename) > 0
	if !explicit {
		filename = common.ToolMode().SettingsFile()
		if !pathlib.IsFile(filename) {
			common.Trace("No settings file at %q.", filename)
			return nil
		}
	}
	config.SetConfigFile(filename)
	config.SetConfigType("yaml")
	err := config.ReadInConfig()
	var missing viper.ConfigFileNotFoundError
	if err != nil && !explicit && errors.As(err, &missing) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings %q: %w", filename, err)
	}
	common.Debug("Using settings from %q.", config.ConfigFileUsed())
	return nil
}

func BindFlag(key string, flag *pflag.Flag) error {
	lock.Lock()
	defer lock.Unlock()

	return config.BindPFlag(key, flag)
}

// IsSet tells if the key got a value from a changed flag, the environment
// or the settings file. Flag defaults do not count.
func IsSet(key string) bool {
	lock.Lock()
	defer lock.Unlock()

	return config.IsSet(key)
}

func GetString(key string) string {
	lock.Lock()
	defer lock.Unlock()

	return config.GetString(key)
}

func GetBool(key string) bool {
	lock.Lock()
	defer lock.Unlock()

	return config.GetBool(key)
}

// GetPatterns returns a list setting. A single string, as environment
// variables give, is split with shell quoting rules.
func GetPatterns(key string) ([]string, error) {
	lock.Lock()
	raw := config.Get(key)
	lock.Unlock()

	switch value := raw.(type) {
	case nil:
		return []string{}, nil
	case string:
		return Split(value)
	case []string:
		return append([]string{}, value...), nil
	case []interface{}:
		result := make([]string, 0, len(value))
		for _, entry := range value {
			result = append(result, fmt.Sprint(entry))
		}
		return result, nil
	default:
		return nil, fmt.Errorf("setting %q has unsupported type %T", key, raw)
	}
}

func Split(value string) ([]string, error) {
	parts, err := shlex.Split(value)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", value, err)
	}
	return parts, nil
}
