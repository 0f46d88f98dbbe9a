/*
File    : mova/config/config_test.go
Package : config
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscover_MissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(cwd)
	assert.NoError(t, os.Chdir(dir))

	cfg, err := Discover("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDiscover_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("trace: true\ncolor: false\n"), 0o644))

	cfg, err := Discover(path)
	assert.NoError(t, err)
	assert.Equal(t, Config{Trace: true, Color: false}, cfg)
}

func TestDiscover_FindsDotMovaYamlInCwd(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(cwd)
	assert.NoError(t, os.Chdir(dir))
	assert.NoError(t, os.WriteFile(".mova.yaml", []byte("trace: true\n"), 0o644))

	cfg, err := Discover("")
	assert.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.True(t, cfg.Color) // absent from the file, so it keeps Default's value
}
