package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the configuration file looked up by FindConfig.
const ConfigFileName = "zkconv.yaml"

// FindConfig looks upwards from startDir for ConfigFileName and returns its
// absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if path := filepath.Join(dir, ConfigFileName); isFile(path) {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", ConfigFileName)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
