package common

import (
	"os"
	"path/filepath"
)

const (
	HOME_VARIABLE = `TRANSITIVE_SBOM_HOME`
	PRODUCT_NAME  = `transitive-sbom`
	SETTINGS_NAME = `settings.yaml`
)

type (
	ProductStrategy interface {
		Home() string
		SettingsFile() string
	}

	toolStrategy struct{}
)

func ToolMode() ProductStrategy {
	return &toolStrategy{}
}

func (it *toolStrategy) Home() string {
	home := os.Getenv(HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

// SettingsFile is the default configuration file, read when it exists.
func (it *toolStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), SETTINGS_NAME)
}
