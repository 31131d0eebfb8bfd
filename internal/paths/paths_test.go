package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/kvedit/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestDir(t *testing.T) {
	t.Setenv(paths.EnvHome, "")
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.Dir(), home))
	assert.True(t, strings.HasSuffix(paths.Dir(), ".kvedit"))
}

func TestDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvHome, dir)
	assert.Equal(t, dir, paths.Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), paths.ConfigFile())
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestLogFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.LogFile(), "kvedit.log"))
}
