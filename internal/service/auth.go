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
	ErrAdminNotFound = repository.ErrAdminNotFound
	ErrWrongPassword = errors.New("wrong password")
)

type AuthAdminRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
}

type AuthService struct {
	repo AuthAdminRepository
}

func NewAuthService(repo AuthAdminRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return domain.Admin{}, ErrWrongPassword
	}

	return admin, nil
}

func (s *AuthService) GetAdmin(ctx context.Context, id uint) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return admin, nil
}
