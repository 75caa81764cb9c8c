// Package config loads kiln.yaml into an immutable domain.BuildConfig,
// mirroring the teacher's two-stage YAML-DTO-to-domain-object load.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader loads a BuildConfig from a named YAML file relative to a
// working directory.
type FileLoader struct {
	Filename string
}

var _ ports.ConfigLoader = (*FileLoader)(nil)

// Load reads the configuration from cwd/l.Filename.
func (l *FileLoader) Load(cwd string) (*domain.BuildConfig, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// fileDTO is the on-disk shape of kiln.yaml.
type fileDTO struct {
	BuildDir string           `yaml:"buildDir"`
	Arch     string           `yaml:"arch"`
	CC       []string         `yaml:"cc"`
	LD       []string         `yaml:"ld"`
	AR       []string         `yaml:"ar"`
	CFlags   []string         `yaml:"cflags"`
	LDFlags  []string         `yaml:"ldflags"`
	Include  []string         `yaml:"includeDirs"`
	ObjExt   string           `yaml:"objExt"`
	LibExt   string           `yaml:"libExt"`
	ExecExt  string           `yaml:"execExt"`
	// ArchOverrides lets a single kiln.yaml declare per-architecture
	// include roots, e.g. distinct "host" and "avr" search paths for the
	// same header name (supplementing spec.md from the sample project's
	// include/ vs. dep/port/avr/ layout — see SPEC_FULL.md §8).
	ArchOverrides map[string]archOverrideDTO `yaml:"archOverrides"`
}

type archOverrideDTO struct {
	Include []string `yaml:"includeDirs"`
	CFlags  []string `yaml:"cflags"`
}

// Load reads and parses the YAML file at path into a domain.BuildConfig.
func Load(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	include := dto.Include
	cflags := dto.CFlags
	if override, ok := dto.ArchOverrides[dto.Arch]; ok {
		include = append(append([]string{}, dto.Include...), override.Include...)
		cflags = append(append([]string{}, dto.CFlags...), override.CFlags...)
	}

	return domain.NewBuildConfig(domain.BuildConfigParams{
		BuildDir:    dto.BuildDir,
		Arch:        dto.Arch,
		CC:          dto.CC,
		LD:          dto.LD,
		AR:          dto.AR,
		CFlags:      cflags,
		LDFlags:     dto.LDFlags,
		IncludeDirs: prefixIncludeDirs(include),
		ObjExt:      dto.ObjExt,
		LibExt:      dto.LibExt,
		ExecExt:     dto.ExecExt,
	}), nil
}

// prefixIncludeDirs prefixes every raw directory with "-I", matching
// spec.md §3's "include-directory flags (prefixed with -I)".
func prefixIncludeDirs(dirs []string) []string {
	out := make([]string, len(dirs))
	for i, d := range dirs {
		out[i] = "-I" + d
	}
	return out
}
