package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsheet/contracts"
)

func TestSnapshotFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet1.json")

	snapshot := contracts.SheetSnapshot{
		"A1": "5",
		"B1": "=A1*2",
		"C1": "hello",
	}

	assert.NoError(t, SaveSnapshotFile(path, snapshot))

	loaded, err := LoadSnapshotFile(path)
	assert.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestLoadSnapshotFile(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadSnapshotFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("not_json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		assert.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

		_, err := LoadSnapshotFile(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse snapshot")
	})
}
