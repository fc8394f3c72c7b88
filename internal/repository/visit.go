package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

var (
	ErrVisitNotFound = dao.ErrVisitNotFound
	ErrVisitExists   = dao.ErrVisitExists
)

type VisitDAO interface {
	Insert(ctx context.Context, visit dao.Visit) (dao.Visit, error)
	FindByID(ctx context.Context, id uint) (dao.Visit, error)
	FindAll(ctx context.Context) ([]dao.Visit, error)
	CountByVisitorID(ctx context.Context, visitorID uint) (int64, error)
	UpdateRating(ctx context.Context, id uint, rating int, comment *string) (dao.Visit, error)
}

type VisitRepository struct {
	dao VisitDAO
}

func NewVisitRepository(dao VisitDAO) *VisitRepository {
	return &VisitRepository{
		dao: dao,
	}
}

func (r *VisitRepository) Create(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	created, err := r.dao.Insert(ctx, visitDomainToDAO(visit))
	if err != nil {
		return domain.Visit{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	// Reload with booth and visitor for immediate display.
	loaded, err := r.dao.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return visitDAOToDomain(loaded), nil
}

func (r *VisitRepository) FindByID(ctx context.Context, id uint) (domain.Visit, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return visitDAOToDomain(found), nil
}

func (r *VisitRepository) FindAll(ctx context.Context) ([]domain.Visit, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	visits := make([]domain.Visit, len(found))
	for i, v := range found {
		visits[i] = visitDAOToDomain(v)
	}

	return visits, nil
}

func (r *VisitRepository) CountByVisitorID(ctx context.Context, visitorID uint) (int, error) {
	count, err := r.dao.CountByVisitorID(ctx, visitorID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByVisitorID -> %w", err)
	}

	return int(count), nil
}

func (r *VisitRepository) SetRating(ctx context.Context, id uint, rating int, comment *string) (domain.Visit, error) {
	updated, err := r.dao.UpdateRating(ctx, id, rating, comment)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("r.dao.UpdateRating -> %w", err)
	}

	return visitDAOToDomain(updated), nil
}
