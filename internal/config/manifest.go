package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParsing  = errors.New("manifest parsing failed")
	ErrManifestInvalid  = errors.New("manifest is invalid")
)

// Manifest describes a batch of bulk syncs, one per job.
type Manifest struct {
	Jobs []ManifestJob `yaml:"jobs"`
}

// ManifestJob is one bulk sync: the branches of Origin into Target.
type ManifestJob struct {
	Origin string `yaml:"origin"`
	Target string `yaml:"target"`
	// Branches to sync. Omitted means every branch on origin.
	Branches []string `yaml:"branches"`
	// Prefix is prepended to each branch directory name.
	Prefix string `yaml:"prefix"`
}

// LoadManifest loads and parses a manifest file. Relative targets are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestParsing, err)
	}

	base := filepath.Dir(path)
	for i := range m.Jobs {
		job := &m.Jobs[i]
		if job.Origin == "" {
			return nil, fmt.Errorf("%w: job %d has no origin", ErrManifestInvalid, i)
		}
		if job.Target == "" {
			return nil, fmt.Errorf("%w: job %d has no target", ErrManifestInvalid, i)
		}
		if !filepath.IsAbs(job.Target) {
			job.Target = filepath.Join(base, job.Target)
		}
	}
	return &m, nil
}
