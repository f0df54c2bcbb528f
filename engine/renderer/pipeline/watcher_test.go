package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFlagsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frag.glsl")
	require.NoError(t, os.WriteFile(path, []byte(fragSrc), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Dirty())

	require.NoError(t, os.WriteFile(path, []byte(fragSrc+"\n"), 0o644))

	require.Eventually(t, func() bool {
		return w.Dirty()
	}, 2*time.Second, 10*time.Millisecond)

	// The flag clears once observed.
	assert.False(t, w.Dirty())
}

func TestWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing.glsl"))
	require.Error(t, err)
}

func TestWatcherCoalescesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vert.glsl")
	require.NoError(t, os.WriteFile(path, []byte(vertSrc), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(vertSrc), 0o644))
	}

	require.Eventually(t, func() bool {
		return w.Dirty()
	}, 2*time.Second, 10*time.Millisecond)
}
