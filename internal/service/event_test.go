package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syaifulazham/booth-visit/internal/backup"
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

type fakeEventRepo struct {
	event *domain.Event
}

func (f *fakeEventRepo) FindFirst(_ context.Context) (domain.Event, error) {
	if f.event == nil {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return *f.event, nil
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = 1
	f.event = &event

	return event, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	f.event = &event

	return event, nil
}

// fakeBackupRepo mimics the store-side fresh-identity behavior: every
// restored entity gets a new ID regardless of what the input carried.
type fakeBackupRepo struct {
	booths   []domain.Booth
	visitors []domain.Visitor
	visits   []domain.Visit
	nextID   uint
	wipes    int
}

func newFakeBackupRepo() *fakeBackupRepo {
	return &fakeBackupRepo{nextID: 100}
}

func (f *fakeBackupRepo) SnapshotBooths(_ context.Context) ([]domain.Booth, error) {
	return append([]domain.Booth(nil), f.booths...), nil
}

func (f *fakeBackupRepo) SnapshotVisitors(_ context.Context) ([]domain.Visitor, error) {
	return append([]domain.Visitor(nil), f.visitors...), nil
}

func (f *fakeBackupRepo) SnapshotVisits(_ context.Context) ([]domain.Visit, error) {
	return append([]domain.Visit(nil), f.visits...), nil
}

func (f *fakeBackupRepo) WipeAll(_ context.Context) error {
	f.booths = nil
	f.visitors = nil
	f.visits = nil
	f.wipes++

	return nil
}

func (f *fakeBackupRepo) RestoreBooth(_ context.Context, booth domain.Booth) (domain.Booth, error) {
	booth.ID = f.nextID
	f.nextID++
	f.booths = append(f.booths, booth)

	return booth, nil
}

func (f *fakeBackupRepo) RestoreVisitor(_ context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	visitor.ID = f.nextID
	f.nextID++
	f.visitors = append(f.visitors, visitor)

	return visitor, nil
}

func (f *fakeBackupRepo) RestoreVisit(_ context.Context, visit domain.Visit) (domain.Visit, error) {
	visit.ID = f.nextID
	f.nextID++
	f.visits = append(f.visits, visit)

	return visit, nil
}

func seedBackupRepo(repo *fakeBackupRepo) {
	repo.booths = []domain.Booth{
		{ID: 1, BoothName: "Robotics", Hashcode: "aaaaaaaaaaaaaaaa"},
		{ID: 2, BoothName: "Space", Hashcode: "bbbbbbbbbbbbbbbb"},
	}
	repo.visitors = []domain.Visitor{
		{ID: 7, Name: "Aisyah", Email: "aisyah@example.com", CookieID: "c0ffee"},
	}
	repo.visits = []domain.Visit{
		{ID: 3, VisitorID: 7, BoothID: 1, VisitedAt: time.Now().UTC()},
	}
}

func TestEventService_UpsertEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, newFakeBackupRepo(), backup.NewFileStore(t.TempDir()))

	_, err := svc.GetEvent(context.Background())
	assert.ErrorIs(t, err, ErrEventNotFound)

	created, err := svc.UpsertEvent(context.Background(), domain.Event{Name: "Tech Expo", Venue: "Hall A"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	updated, err := svc.UpsertEvent(context.Background(), domain.Event{Name: "Tech Expo 2025", Venue: "Hall B"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Tech Expo 2025", updated.Name)

	got, err := svc.GetEvent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hall B", got.Venue)
}

func TestEventService_ResetEvent(t *testing.T) {
	backups := newFakeBackupRepo()
	seedBackupRepo(backups)
	store := backup.NewFileStore(filepath.Join(t.TempDir(), "backups"))
	svc := NewEventService(&fakeEventRepo{}, backups, store)

	result, err := svc.ResetEvent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Booths)
	assert.Equal(t, 1, result.Visitors)
	assert.Equal(t, 1, result.Visits)
	assert.NotEmpty(t, result.Filename)
	assert.FileExists(t, result.Path)

	// Everything wiped.
	assert.Empty(t, backups.booths)
	assert.Empty(t, backups.visitors)
	assert.Empty(t, backups.visits)
	assert.Equal(t, 1, backups.wipes)

	files, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, result.Filename, files[0].Filename)
}

func TestEventService_ResetEvent_BackupWriteFailureStillWipes(t *testing.T) {
	backups := newFakeBackupRepo()
	seedBackupRepo(backups)

	// Point the store's directory at a regular file so the write fails.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	store := backup.NewFileStore(filepath.Join(blocked, "backups"))

	svc := NewEventService(&fakeEventRepo{}, backups, store)

	result, err := svc.ResetEvent(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Filename)
	assert.Empty(t, result.Path)
	assert.Equal(t, 2, result.Booths)

	// Deletion proceeds despite the lost backup.
	assert.Equal(t, 1, backups.wipes)
	assert.Empty(t, backups.booths)
}

func TestEventService_RestoreBackup(t *testing.T) {
	store := backup.NewFileStore(t.TempDir())

	visitedAt := time.Date(2025, 8, 30, 11, 0, 0, 0, time.UTC)
	env := backup.NewEnvelope(time.Now(),
		[]domain.Booth{
			{ID: 1, BoothName: "Robotics", Hashcode: "aaaaaaaaaaaaaaaa"},
			{ID: 2, BoothName: "Space", Hashcode: "bbbbbbbbbbbbbbbb"},
		},
		[]domain.Visitor{
			{ID: 7, Name: "Aisyah", Email: "aisyah@example.com", CookieID: "c0ffee"},
		},
		[]domain.Visit{
			{ID: 3, VisitorID: 7, BoothID: 2, VisitedAt: visitedAt},
			// Orphan: booth 999 is not part of the backup.
			{ID: 4, VisitorID: 7, BoothID: 999, VisitedAt: visitedAt},
		},
	)
	filename, _, err := store.Write(env)
	require.NoError(t, err)

	backups := newFakeBackupRepo()
	seedBackupRepo(backups)
	svc := NewEventService(&fakeEventRepo{}, backups, store)

	result, err := svc.RestoreBackup(context.Background(), filename)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Booths)
	assert.Equal(t, 1, result.Visitors)
	assert.Equal(t, 1, result.Visits)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, env.Timestamp, result.Timestamp)
	assert.Equal(t, 1, backups.wipes)

	// Fresh identities, never the backed-up IDs.
	require.Len(t, backups.booths, 2)
	assert.GreaterOrEqual(t, backups.booths[0].ID, uint(100))
	require.Len(t, backups.visitors, 1)
	assert.GreaterOrEqual(t, backups.visitors[0].ID, uint(100))

	// The surviving visit points at the re-created rows.
	require.Len(t, backups.visits, 1)
	assert.Equal(t, backups.visitors[0].ID, backups.visits[0].VisitorID)

	var spaceID uint
	for _, booth := range backups.booths {
		if booth.BoothName == "Space" {
			spaceID = booth.ID
		}
	}
	assert.Equal(t, spaceID, backups.visits[0].BoothID)
	assert.Equal(t, visitedAt, backups.visits[0].VisitedAt.UTC())
}

func TestEventService_RestoreBackup_InvalidFilenameLeavesDataIntact(t *testing.T) {
	backups := newFakeBackupRepo()
	seedBackupRepo(backups)
	svc := NewEventService(&fakeEventRepo{}, backups, backup.NewFileStore(t.TempDir()))

	_, err := svc.RestoreBackup(context.Background(), "../../etc/passwd.json.gz")
	assert.ErrorIs(t, err, ErrInvalidBackupFilename)

	_, err = svc.RestoreBackup(context.Background(), "backup-missing.json.gz")
	assert.ErrorIs(t, err, ErrBackupReadFailed)

	// Validation failed before any mutation.
	assert.Equal(t, 0, backups.wipes)
	assert.Len(t, backups.booths, 2)
}
