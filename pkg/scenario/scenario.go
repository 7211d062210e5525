package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario from a YAML file, overlaying the defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	return sc, nil
}

// LoadProject loads a scenario from a project directory.
// It looks for resort.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	scenarioPath := filepath.Join(projectDir, "resort.yaml")
	return Load(scenarioPath)
}
