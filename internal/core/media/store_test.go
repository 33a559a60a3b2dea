package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndPathRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("holiday.jpg", strings.NewReader("not really a jpeg"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	path, err := store.Path(key)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", string(data))
}

func TestSaveIgnoresClientFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	key, err := store.Save("../../etc/passwd", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, "/")

	// The file lands inside the base directory under a generated key
	_, err = os.Stat(filepath.Join(dir, key))
	require.NoError(t, err)
}

func TestPathRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../secret", "a/b", `a\b`, "nope.png"} {
		_, err := store.Path(key)
		assert.ErrorIs(t, err, ErrNotFound, "key %q", key)
	}
}

func TestNewDiskStoreRequiresBasePath(t *testing.T) {
	_, err := NewDiskStore("")
	assert.ErrorIs(t, err, ErrInvalidBasePath)
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".png", safeExt("photo.PNG"))
	assert.Equal(t, "", safeExt("noext"))
	assert.Equal(t, "", safeExt("weird..%00"))
	assert.Equal(t, "", safeExt("long.extensiontoolong"))
}
