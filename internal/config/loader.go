// Package config describes one rasterization job and loads it from an
// optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job is the full configuration surface of a single run. Zero values
// are replaced by the same defaults the CLI flags use.
type Job struct {
	Input      string `yaml:"input"`
	OutPrefix  string `yaml:"out_prefix"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Format     string `yaml:"format"`
	ProjectUTM bool   `yaml:"project_utm"`
	Invert     bool   `yaml:"invert"`
}

// Default returns a job with the standard defaults filled in.
func Default() Job {
	return Job{OutPrefix: "mask", Width: 50, Height: 50, Format: "png"}
}

// LoadJob reads a YAML job file. Fields absent from the file keep
// their defaults; validation is left to Validate so CLI overrides can
// be applied first.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to load job file: %w", err)
	}
	job := Default()
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return job, nil
}

// Validate checks the fields the core depends on.
func (j Job) Validate() error {
	if j.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if j.Width <= 0 || j.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", j.Width, j.Height)
	}
	switch j.Format {
	case "png", "jpg", "jpeg":
	default:
		return fmt.Errorf("unsupported image format %q (want png, jpg or jpeg)", j.Format)
	}
	return nil
}
