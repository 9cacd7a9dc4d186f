package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
}

// LoadFromFile loads a RenderConfig from a YAML file on top of Default()
func LoadFromFile(path string, opts LoadOptions) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if opts.ResolvePaths {
		config.ResolvePaths(filepath.Dir(path))
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// Parse decodes YAML into a copy of Default()
func Parse(data []byte) (*RenderConfig, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves a RenderConfig to a YAML file
func SaveToFile(config *RenderConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes the mesh and output paths relative to baseDir absolute
func (c *RenderConfig) ResolvePaths(baseDir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}
	c.Scene.Mesh.Path = resolve(c.Scene.Mesh.Path)
	c.Output.PPM = resolve(c.Output.PPM)
	c.Output.PNG = resolve(c.Output.PNG)
}
