package config

import (
	"os"

	"github.com/Jeffail/gabs"
)

var config *gabs.Container

// Load parses the given json config file. A missing file is not an
// error: Get then falls back to the caller's defaults.
func Load(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil
	}

	json, err := gabs.ParseJSONFile(file)
	if err != nil {
		return err
	}

	config = json
	return nil
}

// Get returns config data with the given path, or the fallback when the
// config is not loaded or has no such path.
// Config data is only allowed in string type.
func Get(path, fallback string) string {
	if config == nil || !config.ExistsP(path) {
		return fallback
	}
	if s, ok := config.Path(path).Data().(string); ok {
		return s
	}
	return fallback
}
