/*
File    : mova/file/source_test.go
Package : file
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSource_ReturnsContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.mova")
	assert.NoError(t, os.WriteFile(path, []byte("1 + 2"), 0o644))

	src, err := ReadSource(path)
	assert.NoError(t, err)
	assert.Equal(t, "1 + 2", src)
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.mova"))
	assert.Error(t, err)
}

func TestReadSource_RejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.mova")
	assert.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	_, err := ReadSource(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}
