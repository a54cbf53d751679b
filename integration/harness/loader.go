//go:build integration

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// LoadScenario loads a single scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: failed to read scenario file %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("harness: failed to parse scenario file %s: %w", path, err)
	}

	scenario.filePath = path

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("harness: invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadAllScenarios loads all scenarios from a directory recursively.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, scenario)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("harness: failed to load scenarios from %s: %w", dir, err)
	}

	return scenarios, nil
}

// ValidateScenario validates a scenario's structure and required fields.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}
	if len(s.Corpus) == 0 {
		return fmt.Errorf("scenario '%s' must declare at least one corpus file", s.Name)
	}
	if !s.Expect.hasAny() {
		return fmt.Errorf("scenario '%s' must declare at least one expectation", s.Name)
	}
	if s.Expect.Error != "" && s.Expect.hasSuccessAssertions() {
		return fmt.Errorf("scenario '%s' expects an error and success assertions at once", s.Name)
	}
	return nil
}

func (e Expectations) hasAny() bool {
	return e.Error != "" || e.hasSuccessAssertions()
}

func (e Expectations) hasSuccessAssertions() bool {
	return e.SchemaCount != nil ||
		e.DefinitionCount != nil ||
		len(e.DefinitionNames) > 0 ||
		e.WarningCount != nil ||
		len(e.DocumentContains) > 0 ||
		len(e.DocumentLacks) > 0
}
