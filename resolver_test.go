package copydir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDest_MissingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "fresh")

	target, cerr := resolveDest(src, dst, false)
	require.Nil(t, cerr)
	assert.Equal(t, dst, target)
	assert.NoDirExists(t, dst)

	// createMissing creates the resolved path as a directory.
	target, cerr = resolveDest(src, dst, true)
	require.Nil(t, cerr)
	assert.Equal(t, dst, target)
	assert.DirExists(t, dst)
}

func TestResolveDest_ExistingDirNestsBasename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "backup")
	require.NoError(t, os.MkdirAll(dst, 0755))

	target, cerr := resolveDest(src, dst, true)
	require.Nil(t, cerr)
	assert.Equal(t, filepath.Join(dst, "proj"), target)
	assert.DirExists(t, target)
}

func TestResolveDest_ExistingNestedDirIsReused(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "backup")
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "proj"), 0755))

	target, cerr := resolveDest(src, dst, true)
	require.Nil(t, cerr)
	assert.Equal(t, filepath.Join(dst, "proj"), target)
}

func TestResolveDest_TargetNotADirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "backup")
	require.NoError(t, os.MkdirAll(dst, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "proj"), []byte("x"), 0644))

	_, cerr := resolveDest(src, dst, true)
	require.NotNil(t, cerr)
	assert.Equal(t, KindTargetNotADirectory, cerr.Kind)
}

func TestResolveDest_DestinationIsNonDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(dst, []byte("x"), 0644))

	_, cerr := resolveDest(src, dst, true)
	require.NotNil(t, cerr)
	assert.Equal(t, KindDestinationExists, cerr.Kind)
}

func TestResolveDest_CannotDetermineBasename(t *testing.T) {
	dst := t.TempDir()

	_, cerr := resolveDest("/", dst, false)
	require.NotNil(t, cerr)
	assert.Equal(t, KindCannotDetermineBasename, cerr.Kind)
}

func TestResolveDest_ParentDirHasNoBasename(t *testing.T) {
	// ".." names the destination's surroundings, not an entry under it;
	// resolving it would aim the copy outside dst.
	dst := t.TempDir()

	for _, src := range []string{"..", "../", "a/../.."} {
		_, cerr := resolveDest(src, dst, false)
		require.NotNil(t, cerr, "src %q", src)
		assert.Equal(t, KindCannotDetermineBasename, cerr.Kind, "src %q", src)
	}
}

func TestResolveDest_TargetAliasesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(src, 0755))

	// Merging dir/sub into dir resolves to dir/sub itself.
	_, cerr := resolveDest(src, dir, true)
	require.NotNil(t, cerr)
	assert.Equal(t, KindSourceIsDestinationRoot, cerr.Kind)
}
