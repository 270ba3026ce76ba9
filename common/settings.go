package common

import (
	"os"

	"github.com/chng-cli/chng/logger"
	"gopkg.in/yaml.v3"
)

// Settings tune how the changelog prompt is built. They come from an
// optional chng.yml in the working directory.
type Settings struct {
	Language     string `yaml:"language"`
	Instructions string `yaml:"instructions"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Language: "en-US",
	}
}

// WithYamlFile returns the defaults overlaid with chng.yml or chng.yaml
// from the working directory when one exists. A file that fails to parse
// is logged and ignored.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"chng.yml", "chng.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debug("No chng.yml found in the working directory. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Infof("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Infof("Failed to parse settings file %s: %v", filePath, err)
		return WithDefaultSettings()
	}

	logger.Infof("Using settings from %s", filePath)
	return settings
}
