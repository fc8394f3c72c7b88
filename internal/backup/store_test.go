package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syaifulazham/booth-visit/internal/domain"
)

func testEnvelope(now time.Time) Envelope {
	number := "A1"

	return NewEnvelope(now,
		[]domain.Booth{{ID: 1, BoothNumber: &number, BoothName: "Robotics", Hashcode: "deadbeefdeadbeef"}},
		[]domain.Visitor{{ID: 7, Name: "Aisyah", Email: "aisyah@example.com", CookieID: "c0ffee"}},
		[]domain.Visit{{ID: 3, VisitorID: 7, BoothID: 1, VisitedAt: now}},
	)
}

func TestFileStore_WriteRead(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "backups"))
	now := time.Date(2025, 8, 30, 10, 15, 0, 0, time.UTC)
	env := testEnvelope(now)

	filename, path, err := store.Write(env)
	require.NoError(t, err)
	assert.Equal(t, "backup-2025-08-30T10-15-00-000Z.json.gz", filename)
	assert.FileExists(t, path)

	got, err := store.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, env, got)
	assert.Equal(t, 1, got.Booths)
	assert.Equal(t, 1, got.Visitors)
	assert.Equal(t, 1, got.Visits)
	assert.Len(t, got.Data.Booths, got.Booths)
}

func TestFileStore_WriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "backups")
	store := NewFileStore(dir)

	_, _, err := store.Write(testEnvelope(time.Now()))
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestFileStore_List(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	older := testEnvelope(time.Date(2025, 8, 29, 9, 0, 0, 0, time.UTC))
	newer := testEnvelope(time.Date(2025, 8, 30, 9, 0, 0, 0, time.UTC))

	olderName, olderPath, err := store.Write(older)
	require.NoError(t, err)
	newerName, _, err := store.Write(newer)
	require.NoError(t, err)

	// Not a backup file, must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	// Force distinct mtimes so the sort is deterministic.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(olderPath, past, past))

	backups, err := store.List()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, newerName, backups[0].Filename)
	assert.Equal(t, olderName, backups[1].Filename)
	assert.Greater(t, backups[0].Size, int64(0))
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))

	backups, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestFileStore_ReadRejectsFilenameBeforeIO(t *testing.T) {
	// The directory never exists, so any IO attempt would fail with a
	// different error than the one asserted here.
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := store.Read("backup.txt")
	assert.ErrorIs(t, err, ErrInvalidFilename)

	_, err = store.Read("../escape.json.gz")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestFileStore_ReadMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Read("backup-gone.json.gz")
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestFileStore_ReadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup-bad.json.gz"), []byte("not gzip"), 0o644))

	_, err := store.Read("backup-bad.json.gz")
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestFileStore_ReadMalformedEnvelope(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	// Valid gzip and JSON, but the data arrays are missing.
	env := Envelope{Timestamp: "2025-08-30T10:15:00.000Z"}
	filename, _, err := store.Write(env)
	require.NoError(t, err)

	_, err = store.Read(filename)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
