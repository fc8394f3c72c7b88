package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/syaifulazham/booth-visit/internal/backup"
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

var (
	ErrEventNotFound         = repository.ErrEventNotFound
	ErrInvalidBackupFilename = backup.ErrInvalidFilename
	ErrBackupReadFailed      = backup.ErrReadFailed
	ErrInvalidBackupFormat   = backup.ErrInvalidFormat
)

type EventRepository interface {
	FindFirst(ctx context.Context) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
}

type BackupRepository interface {
	SnapshotBooths(ctx context.Context) ([]domain.Booth, error)
	SnapshotVisitors(ctx context.Context) ([]domain.Visitor, error)
	SnapshotVisits(ctx context.Context) ([]domain.Visit, error)
	WipeAll(ctx context.Context) error
	RestoreBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error)
	RestoreVisitor(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)
	RestoreVisit(ctx context.Context, visit domain.Visit) (domain.Visit, error)
}

type BackupStore interface {
	Write(env backup.Envelope) (filename, path string, err error)
	List() ([]backup.FileInfo, error)
	Read(filename string) (backup.Envelope, error)
}

// ResetResult describes a completed reset: what was backed up (if the
// backup file could be written) and how much data was wiped.
type ResetResult struct {
	Filename string `json:"filename,omitempty"`
	Path     string `json:"path,omitempty"`
	Booths   int    `json:"booths"`
	Visitors int    `json:"visitors"`
	Visits   int    `json:"visits"`
}

// RestoreResult reports how much of a backup made it back into the
// store. Visits may be fewer than the backup recorded when orphaned
// references were skipped; Skipped surfaces how many.
type RestoreResult struct {
	Booths    int    `json:"booths"`
	Visitors  int    `json:"visitors"`
	Visits    int    `json:"visits"`
	Skipped   int    `json:"skipped"`
	Timestamp string `json:"timestamp"`
}

// EventService owns the singleton event metadata and the
// reset/backup/restore lifecycle of the whole event dataset.
type EventService struct {
	repo    EventRepository
	backups BackupRepository
	store   BackupStore
}

func NewEventService(repo EventRepository, backups BackupRepository, store BackupStore) *EventService {
	return &EventService{
		repo:    repo,
		backups: backups,
		store:   store,
	}
}

func (s *EventService) GetEvent(ctx context.Context) (domain.Event, error) {
	event, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindFirst -> %w", err)
	}

	return event, nil
}

// UpsertEvent updates the current event, or creates it when none
// exists yet (first-found-or-create singleton semantics).
func (s *EventService) UpsertEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			created, err := s.repo.Create(ctx, event)
			if err != nil {
				return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
			}

			return created, nil
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindFirst -> %w", err)
	}

	event.ID = existing.ID
	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CreateBackup snapshots all booths, visitors and visits into an
// envelope. The three reads are independent full-table reads, not one
// consistent snapshot.
func (s *EventService) CreateBackup(ctx context.Context) (backup.Envelope, error) {
	booths, err := s.backups.SnapshotBooths(ctx)
	if err != nil {
		return backup.Envelope{}, fmt.Errorf("s.backups.SnapshotBooths -> %w", err)
	}

	visitors, err := s.backups.SnapshotVisitors(ctx)
	if err != nil {
		return backup.Envelope{}, fmt.Errorf("s.backups.SnapshotVisitors -> %w", err)
	}

	visits, err := s.backups.SnapshotVisits(ctx)
	if err != nil {
		return backup.Envelope{}, fmt.Errorf("s.backups.SnapshotVisits -> %w", err)
	}

	return backup.NewEnvelope(time.Now(), booths, visitors, visits), nil
}

// ResetEvent backs up the current data, then wipes visits, visitors
// and booths in one transaction. A failure to write the backup file is
// logged and swallowed: event continuity is prioritized over backup
// durability, and deletion proceeds regardless.
func (s *EventService) ResetEvent(ctx context.Context) (ResetResult, error) {
	env, err := s.CreateBackup(ctx)
	if err != nil {
		return ResetResult{}, fmt.Errorf("s.CreateBackup -> %w", err)
	}

	result := ResetResult{
		Booths:   env.Booths,
		Visitors: env.Visitors,
		Visits:   env.Visits,
	}

	filename, path, err := s.store.Write(env)
	if err != nil {
		zap.L().Error("failed to write backup file before reset, proceeding with deletion",
			zap.Error(err))
	} else {
		result.Filename = filename
		result.Path = path
	}

	if err = s.backups.WipeAll(ctx); err != nil {
		return ResetResult{}, fmt.Errorf("s.backups.WipeAll -> %w", err)
	}

	return result, nil
}

func (s *EventService) ListBackups(ctx context.Context) ([]backup.FileInfo, error) {
	backups, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("s.store.List -> %w", err)
	}

	return backups, nil
}

// RestoreBackup wipes the store and rebuilds it from the named backup
// file. Backed-up primary keys are never reused: every entity is
// recreated under a fresh identity and visits are re-linked through
// old-to-new ID maps. A visit whose booth or visitor is missing from
// the backup is skipped and counted, not fatal.
func (s *EventService) RestoreBackup(ctx context.Context, filename string) (RestoreResult, error) {
	env, err := s.store.Read(filename)
	if err != nil {
		return RestoreResult{}, err
	}

	if err = s.backups.WipeAll(ctx); err != nil {
		return RestoreResult{}, fmt.Errorf("s.backups.WipeAll -> %w", err)
	}

	boothIDs := make(map[uint]uint, len(env.Data.Booths))
	for _, booth := range env.Data.Booths {
		restored, err := s.backups.RestoreBooth(ctx, booth)
		if err != nil {
			return RestoreResult{}, fmt.Errorf("s.backups.RestoreBooth -> %w", err)
		}
		boothIDs[booth.ID] = restored.ID
	}

	visitorIDs := make(map[uint]uint, len(env.Data.Visitors))
	for _, visitor := range env.Data.Visitors {
		restored, err := s.backups.RestoreVisitor(ctx, visitor)
		if err != nil {
			return RestoreResult{}, fmt.Errorf("s.backups.RestoreVisitor -> %w", err)
		}
		visitorIDs[visitor.ID] = restored.ID
	}

	result := RestoreResult{
		Booths:    len(env.Data.Booths),
		Visitors:  len(env.Data.Visitors),
		Timestamp: env.Timestamp,
	}

	for _, visit := range env.Data.Visits {
		newBoothID, boothOK := boothIDs[visit.BoothID]
		newVisitorID, visitorOK := visitorIDs[visit.VisitorID]
		if !boothOK || !visitorOK {
			result.Skipped++
			continue
		}

		visit.BoothID = newBoothID
		visit.VisitorID = newVisitorID
		visit.Booth = nil
		visit.Visitor = nil

		if _, err = s.backups.RestoreVisit(ctx, visit); err != nil {
			return RestoreResult{}, fmt.Errorf("s.backups.RestoreVisit -> %w", err)
		}
		result.Visits++
	}

	return result, nil
}
