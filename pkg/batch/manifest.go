// manifest.go - YAML job manifests.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/xob0t/GoSteg/pkg/stego"
)

// Op names a batch operation.
type Op string

const (
	OpMerge   Op = "merge"
	OpUnmerge Op = "unmerge"
)

// Job is one merge or unmerge task.
type Job struct {
	Op     Op     `yaml:"op"`
	Cover  string `yaml:"cover,omitempty"`  // merge only
	Secret string `yaml:"secret,omitempty"` // merge only
	Input  string `yaml:"input,omitempty"`  // unmerge only
	Output string `yaml:"output"`
}

// Manifest is the top-level structure of a batch file.
//
//	workers: 4
//	depth: 4
//	jobs:
//	  - {op: merge, cover: a.png, secret: b.jpg, output: a_merged.png}
//	  - {op: unmerge, input: a_merged.png, output: b_recovered.jpg}
type Manifest struct {
	Workers     int   `yaml:"workers"`
	Depth       uint8 `yaml:"depth"`
	FitSecret   bool  `yaml:"fit_secret"`
	JPEGQuality int   `yaml:"jpeg_quality"`
	Jobs        []Job `yaml:"jobs"`
}

// LoadManifest reads a manifest file. Relative job paths are resolved against
// the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.resolvePaths(filepath.Dir(path))
	return m, nil
}

// ParseManifest decodes and validates manifest YAML, applying defaults.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if m.Workers <= 0 {
		m.Workers = runtime.NumCPU()
	}
	if m.Depth == 0 {
		m.Depth = stego.DefaultDepth
	}
	if err := m.Options().Validate(); err != nil {
		return nil, err
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest has no jobs")
	}
	for i, j := range m.Jobs {
		if err := j.validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return &m, nil
}

// Options returns the stego options shared by every job.
func (m *Manifest) Options() stego.Options {
	return stego.Options{
		Depth:       m.Depth,
		FitSecret:   m.FitSecret,
		JPEGQuality: m.JPEGQuality,
	}
}

func (j Job) validate() error {
	if j.Output == "" {
		return fmt.Errorf("output is required")
	}
	switch j.Op {
	case OpMerge:
		if j.Cover == "" || j.Secret == "" {
			return fmt.Errorf("merge needs cover and secret")
		}
	case OpUnmerge:
		if j.Input == "" {
			return fmt.Errorf("unmerge needs input")
		}
	default:
		return fmt.Errorf("unknown op %q: use %q or %q", j.Op, OpMerge, OpUnmerge)
	}
	return nil
}

func (m *Manifest) resolvePaths(baseDir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	for i := range m.Jobs {
		j := &m.Jobs[i]
		j.Cover = resolve(j.Cover)
		j.Secret = resolve(j.Secret)
		j.Input = resolve(j.Input)
		j.Output = resolve(j.Output)
	}
}
