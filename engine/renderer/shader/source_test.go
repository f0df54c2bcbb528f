package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vert.glsl")
	require.NoError(t, os.WriteFile(path, []byte(goodVertexSrc), 0o644))

	src, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name())
	assert.Equal(t, goodVertexSrc, src.Text())
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.glsl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.glsl")
}

func TestFromString(t *testing.T) {
	src := FromString("embedded", "void main() {}")
	assert.Equal(t, "embedded", src.Name())
	assert.Equal(t, "void main() {}", src.Text())
}
