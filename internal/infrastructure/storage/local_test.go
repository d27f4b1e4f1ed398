package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GenerateName(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	name := s.GenerateName("Plan Cadastral.PDF")
	assert.Regexp(t, regexp.MustCompile(`^1700000000123-\d+\.pdf$`), name)

	assert.Regexp(t, regexp.MustCompile(`^1700000000123-\d+$`), s.GenerateName("sans-extension"))
}

func TestLocalStorage_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewLocalStorage(dir)

	name, path, err := s.Save("photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, name), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	exists, err := s.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_RemoveToleratesMissingFile(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	_, path, err := s.Save("a.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(path))
	require.NoError(t, s.Remove(path))

	exists, err := s.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}
