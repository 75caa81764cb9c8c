package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
)

const sampleYAML = `
buildDir: build
arch: avr
cc: ["avr-gcc"]
ld: ["avr-gcc"]
ar: ["avr-ar"]
cflags: ["-Os"]
includeDirs: ["include"]
objExt: ".o"
libExt: ".a"
execExt: ".elf"
archOverrides:
  avr:
    includeDirs: ["dep/port/avr"]
    cflags: ["-mmcu=atmega2560"]
  host:
    includeDirs: ["dep/port/host"]
`

func TestLoad_AppliesArchOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kiln.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "avr", cfg.Arch())
	require.Contains(t, cfg.IncludeDirs(), "-Iinclude")
	require.Contains(t, cfg.IncludeDirs(), "-Idep/port/avr")
	require.NotContains(t, cfg.IncludeDirs(), "-Idep/port/host")
	require.Contains(t, cfg.CFlags(), "-mmcu=atmega2560")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kiln.yaml"), []byte(sampleYAML), 0o644))

	l := &config.FileLoader{Filename: "kiln.yaml"}
	cfg, err := l.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "build", cfg.BuildDir())
}
