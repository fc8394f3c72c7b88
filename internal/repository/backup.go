package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

type BackupDAO interface {
	SnapshotBooths(ctx context.Context) ([]dao.Booth, error)
	SnapshotVisitors(ctx context.Context) ([]dao.Visitor, error)
	SnapshotVisits(ctx context.Context) ([]dao.Visit, error)
	WipeAll(ctx context.Context) error
	RestoreBooth(ctx context.Context, booth dao.Booth) (dao.Booth, error)
	RestoreVisitor(ctx context.Context, visitor dao.Visitor) (dao.Visitor, error)
	RestoreVisit(ctx context.Context, visit dao.Visit) (dao.Visit, error)
}

// BackupRepository exposes the snapshot reads and destructive writes
// behind the reset/restore flows.
type BackupRepository struct {
	dao BackupDAO
}

func NewBackupRepository(dao BackupDAO) *BackupRepository {
	return &BackupRepository{
		dao: dao,
	}
}

func (r *BackupRepository) SnapshotBooths(ctx context.Context) ([]domain.Booth, error) {
	found, err := r.dao.SnapshotBooths(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SnapshotBooths -> %w", err)
	}

	booths := make([]domain.Booth, len(found))
	for i, b := range found {
		booths[i] = boothDAOToDomain(b)
	}

	return booths, nil
}

func (r *BackupRepository) SnapshotVisitors(ctx context.Context) ([]domain.Visitor, error) {
	found, err := r.dao.SnapshotVisitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SnapshotVisitors -> %w", err)
	}

	visitors := make([]domain.Visitor, len(found))
	for i, v := range found {
		visitors[i] = visitorDAOToDomain(v)
	}

	return visitors, nil
}

func (r *BackupRepository) SnapshotVisits(ctx context.Context) ([]domain.Visit, error) {
	found, err := r.dao.SnapshotVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SnapshotVisits -> %w", err)
	}

	visits := make([]domain.Visit, len(found))
	for i, v := range found {
		visits[i] = visitDAOToDomain(v)
	}

	return visits, nil
}

func (r *BackupRepository) WipeAll(ctx context.Context) error {
	if err := r.dao.WipeAll(ctx); err != nil {
		return fmt.Errorf("r.dao.WipeAll -> %w", err)
	}

	return nil
}

// RestoreBooth recreates a backed-up booth under a fresh identity.
// The backup's primary key is discarded; its timestamps are kept.
func (r *BackupRepository) RestoreBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error) {
	daoBooth := boothDomainToDAO(booth)
	daoBooth.ID = 0

	created, err := r.dao.RestoreBooth(ctx, daoBooth)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.RestoreBooth -> %w", err)
	}

	return boothDAOToDomain(created), nil
}

func (r *BackupRepository) RestoreVisitor(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	daoVisitor := visitorDomainToDAO(visitor)
	daoVisitor.ID = 0

	created, err := r.dao.RestoreVisitor(ctx, daoVisitor)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.RestoreVisitor -> %w", err)
	}

	return visitorDAOToDomain(created), nil
}

func (r *BackupRepository) RestoreVisit(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	daoVisit := visitDomainToDAO(visit)
	daoVisit.ID = 0

	created, err := r.dao.RestoreVisit(ctx, daoVisit)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("r.dao.RestoreVisit -> %w", err)
	}

	return visitDAOToDomain(created), nil
}
