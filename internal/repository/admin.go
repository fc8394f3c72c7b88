package repository

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

var (
	ErrAdminEmailExists = dao.ErrAdminEmailExists
	ErrAdminNotFound    = dao.ErrAdminNotFound
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	FindByID(ctx context.Context, id uint) (dao.Admin, error)
	FindByEmail(ctx context.Context, email string) (dao.Admin, error)
	FindAll(ctx context.Context) ([]dao.Admin, error)
	Update(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	Delete(ctx context.Context, id uint) error
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	created, err := r.dao.Insert(ctx, dao.Admin{
		Email:    admin.Email,
		Password: admin.Password,
		Name:     admin.Name,
		Role:     admin.Role,
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return adminDAOToDomain(created), nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (domain.Admin, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return adminDAOToDomain(found), nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (domain.Admin, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return adminDAOToDomain(found), nil
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	admins := make([]domain.Admin, len(found))
	for i, a := range found {
		admins[i] = adminDAOToDomain(a)
	}

	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	updated, err := r.dao.Update(ctx, dao.Admin{
		ID:       admin.ID,
		Email:    admin.Email,
		Password: admin.Password,
		Name:     admin.Name,
		Role:     admin.Role,
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return adminDAOToDomain(updated), nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
