package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

var (
	ErrAdminEmailExists = repository.ErrAdminEmailExists
	ErrSelfDeletion     = errors.New("cannot delete your own account")
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Delete(ctx context.Context, id uint) error
}

// AdminService manages the admin accounts themselves; it is independent
// of visitor and booth data.
type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
	}
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return admins, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	admin.Password = string(hash)

	if admin.Role == "" {
		admin.Role = domain.RoleAdmin
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateAdmin applies the given fields; an empty password leaves the
// stored hash untouched.
func (s *AdminService) UpdateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	existing, err := s.repo.FindByID(ctx, admin.ID)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if admin.Email == "" {
		admin.Email = existing.Email
	}
	if admin.Name == "" {
		admin.Name = existing.Name
	}
	if admin.Role == "" {
		admin.Role = existing.Role
	}

	if admin.Password == "" {
		admin.Password = existing.Password
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}
		admin.Password = string(hash)
	}

	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteAdmin removes an admin account. Admins cannot delete themselves.
func (s *AdminService) DeleteAdmin(ctx context.Context, callerID, id uint) error {
	if callerID == id {
		return ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
