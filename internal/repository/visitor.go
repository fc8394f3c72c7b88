package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

var (
	ErrVisitorNotFound    = dao.ErrVisitorNotFound
	ErrVisitorEmailExists = dao.ErrVisitorEmailExists
	ErrVisitorPhoneExists = dao.ErrVisitorPhoneExists
)

type VisitorDAO interface {
	Insert(ctx context.Context, visitor dao.Visitor) (dao.Visitor, error)
	FindByID(ctx context.Context, id uint) (dao.Visitor, error)
	FindByCookieID(ctx context.Context, cookieID string) (dao.Visitor, error)
	FindByCookieIDWithVisits(ctx context.Context, cookieID string) (dao.Visitor, error)
	FindByPhone(ctx context.Context, phone string) (dao.Visitor, error)
	FindByEmail(ctx context.Context, email string) (dao.Visitor, error)
	FindAll(ctx context.Context) ([]dao.Visitor, error)
	Update(ctx context.Context, visitor dao.Visitor) (dao.Visitor, error)
}

type VisitorRepository struct {
	dao VisitorDAO
}

func NewVisitorRepository(dao VisitorDAO) *VisitorRepository {
	return &VisitorRepository{
		dao: dao,
	}
}

func (r *VisitorRepository) Create(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	created, err := r.dao.Insert(ctx, visitorDomainToDAO(visitor))
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return visitorDAOToDomain(created), nil
}

func (r *VisitorRepository) FindByID(ctx context.Context, id uint) (domain.Visitor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return visitorDAOToDomain(found), nil
}

func (r *VisitorRepository) FindByCookieID(ctx context.Context, cookieID string) (domain.Visitor, error) {
	found, err := r.dao.FindByCookieID(ctx, cookieID)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.FindByCookieID -> %w", err)
	}

	return visitorDAOToDomain(found), nil
}

func (r *VisitorRepository) FindByCookieIDWithVisits(ctx context.Context, cookieID string) (domain.Visitor, error) {
	found, err := r.dao.FindByCookieIDWithVisits(ctx, cookieID)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.FindByCookieIDWithVisits -> %w", err)
	}

	return visitorDAOToDomain(found), nil
}

func (r *VisitorRepository) FindByPhone(ctx context.Context, phone string) (domain.Visitor, error) {
	found, err := r.dao.FindByPhone(ctx, phone)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.FindByPhone -> %w", err)
	}

	return visitorDAOToDomain(found), nil
}

func (r *VisitorRepository) FindByEmail(ctx context.Context, email string) (domain.Visitor, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return visitorDAOToDomain(found), nil
}

func (r *VisitorRepository) FindAll(ctx context.Context) ([]domain.Visitor, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	visitors := make([]domain.Visitor, len(found))
	for i, v := range found {
		visitors[i] = visitorDAOToDomain(v)
	}

	return visitors, nil
}

func (r *VisitorRepository) Update(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	updated, err := r.dao.Update(ctx, visitorDomainToDAO(visitor))
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return visitorDAOToDomain(updated), nil
}
