package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

var (
	ErrBoothNotFound     = dao.ErrBoothNotFound
	ErrBoothNumberExists = dao.ErrBoothNumberExists
)

type BoothDAO interface {
	Insert(ctx context.Context, booth dao.Booth) (dao.Booth, error)
	FindByID(ctx context.Context, id uint) (dao.Booth, error)
	FindByHashcode(ctx context.Context, hashcode string) (dao.Booth, error)
	FindByBoothNumber(ctx context.Context, boothNumber string) (dao.Booth, error)
	FindAll(ctx context.Context) ([]dao.Booth, error)
	CountVisitsPerBooth(ctx context.Context) (map[uint]int, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, booth dao.Booth) (dao.Booth, error)
	SetQRCodeGenerated(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type BoothRepository struct {
	dao BoothDAO
}

func NewBoothRepository(dao BoothDAO) *BoothRepository {
	return &BoothRepository{
		dao: dao,
	}
}

func (r *BoothRepository) Create(ctx context.Context, booth domain.Booth) (domain.Booth, error) {
	created, err := r.dao.Insert(ctx, boothDomainToDAO(booth))
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return boothDAOToDomain(created), nil
}

func (r *BoothRepository) FindByID(ctx context.Context, id uint) (domain.Booth, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return boothDAOToDomain(found), nil
}

func (r *BoothRepository) FindByHashcode(ctx context.Context, hashcode string) (domain.Booth, error) {
	found, err := r.dao.FindByHashcode(ctx, hashcode)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.FindByHashcode -> %w", err)
	}

	return boothDAOToDomain(found), nil
}

func (r *BoothRepository) FindByBoothNumber(ctx context.Context, boothNumber string) (domain.Booth, error) {
	found, err := r.dao.FindByBoothNumber(ctx, boothNumber)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.FindByBoothNumber -> %w", err)
	}

	return boothDAOToDomain(found), nil
}

// FindAll returns all booths newest-first with their visit counts filled in.
func (r *BoothRepository) FindAll(ctx context.Context) ([]domain.Booth, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	counts, err := r.dao.CountVisitsPerBooth(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountVisitsPerBooth -> %w", err)
	}

	booths := make([]domain.Booth, len(found))
	for i, b := range found {
		booths[i] = boothDAOToDomain(b)
		booths[i].VisitCount = counts[b.ID]
	}

	return booths, nil
}

func (r *BoothRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *BoothRepository) Update(ctx context.Context, booth domain.Booth) (domain.Booth, error) {
	updated, err := r.dao.Update(ctx, boothDomainToDAO(booth))
	if err != nil {
		return domain.Booth{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return boothDAOToDomain(updated), nil
}

func (r *BoothRepository) MarkQRCodeGenerated(ctx context.Context, id uint) error {
	if err := r.dao.SetQRCodeGenerated(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SetQRCodeGenerated -> %w", err)
	}

	return nil
}

func (r *BoothRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
