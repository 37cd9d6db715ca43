package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCommitsToALocalRepository(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "0001-basic-out-in"), []byte("placeholder"), 0o644))

	hash, err := Snapshot(dir, "initial scenario corpus")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "0002-new-scenario"), []byte("placeholder"), 0o644))
	secondHash, err := Snapshot(dir, "add a scenario")
	assert.NoError(t, err)
	assert.NotEmpty(t, secondHash)
	assert.NotEqual(t, hash, secondHash, "a second snapshot with new content must produce a new commit")
}
