package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogRotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "app-2026-01-01.log")
	require.NoError(t, os.WriteFile(stale, []byte("old\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	log, err := newDailyLog(dir, 7)
	require.NoError(t, err)
	defer log.Close()
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))

	day := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	log.now = func() time.Time { return day }
	_, err = log.Write([]byte("first\n"))
	require.NoError(t, err)
	day = day.Add(2 * time.Minute)
	_, err = log.Write([]byte("second\n"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "app-2026-03-11.log"))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(raw))
	raw, err = os.ReadFile(filepath.Join(dir, "app-2026-03-10.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(raw))
}
