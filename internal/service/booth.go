package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/pkg/token"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

var ErrBoothNotFound = repository.ErrBoothNotFound

// BoothNumberTakenError reports which booth already owns a conflicting
// booth number, so the message can name it.
type BoothNumberTakenError struct {
	BoothNumber string
	OwnerName   string
}

func (e *BoothNumberTakenError) Error() string {
	if e.OwnerName != "" {
		return fmt.Sprintf("booth number %q already assigned to %q", e.BoothNumber, e.OwnerName)
	}

	return fmt.Sprintf("booth number %q already exists", e.BoothNumber)
}

type BoothRepository interface {
	Create(ctx context.Context, booth domain.Booth) (domain.Booth, error)
	FindByID(ctx context.Context, id uint) (domain.Booth, error)
	FindByHashcode(ctx context.Context, hashcode string) (domain.Booth, error)
	FindByBoothNumber(ctx context.Context, boothNumber string) (domain.Booth, error)
	FindAll(ctx context.Context) ([]domain.Booth, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, booth domain.Booth) (domain.Booth, error)
	MarkQRCodeGenerated(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type BoothService struct {
	repo BoothRepository
}

func NewBoothService(repo BoothRepository) *BoothService {
	return &BoothService{
		repo: repo,
	}
}

// CreateBooth generates the booth's public hashcode and persists it.
func (s *BoothService) CreateBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error) {
	hashcode, err := token.NewHashcode()
	if err != nil {
		return domain.Booth{}, fmt.Errorf("token.NewHashcode -> %w", err)
	}
	booth.Hashcode = hashcode

	created, err := s.repo.Create(ctx, booth)
	if err != nil {
		if errors.Is(err, repository.ErrBoothNumberExists) {
			return domain.Booth{}, s.boothNumberConflict(ctx, booth.BoothNumber)
		}

		return domain.Booth{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *BoothService) GetBooth(ctx context.Context, id uint) (domain.Booth, error) {
	booth, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return booth, nil
}

func (s *BoothService) ListBooths(ctx context.Context) ([]domain.Booth, error) {
	booths, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return booths, nil
}

// VerifyBooth resolves a booth by its public hashcode.
func (s *BoothService) VerifyBooth(ctx context.Context, hashcode string) (domain.Booth, error) {
	booth, err := s.repo.FindByHashcode(ctx, hashcode)
	if err != nil {
		return domain.Booth{}, fmt.Errorf("s.repo.FindByHashcode -> %w", err)
	}

	return booth, nil
}

func (s *BoothService) UpdateBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error) {
	updated, err := s.repo.Update(ctx, booth)
	if err != nil {
		if errors.Is(err, repository.ErrBoothNumberExists) {
			return domain.Booth{}, s.boothNumberConflict(ctx, booth.BoothNumber)
		}

		return domain.Booth{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *BoothService) MarkQRCodeGenerated(ctx context.Context, id uint) error {
	if err := s.repo.MarkQRCodeGenerated(ctx, id); err != nil {
		return fmt.Errorf("s.repo.MarkQRCodeGenerated -> %w", err)
	}

	return nil
}

func (s *BoothService) DeleteBooth(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *BoothService) CountBooths(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Count -> %w", err)
	}

	return count, nil
}

func (s *BoothService) boothNumberConflict(ctx context.Context, boothNumber *string) error {
	conflict := &BoothNumberTakenError{}
	if boothNumber != nil {
		conflict.BoothNumber = *boothNumber

		if owner, err := s.repo.FindByBoothNumber(ctx, *boothNumber); err == nil {
			conflict.OwnerName = owner.BoothName
		}
	}

	return conflict
}
