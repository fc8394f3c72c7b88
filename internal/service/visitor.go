package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/pkg/token"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

var (
	ErrVisitorNotFound    = repository.ErrVisitorNotFound
	ErrVisitorEmailExists = repository.ErrVisitorEmailExists
	ErrVisitorPhoneExists = repository.ErrVisitorPhoneExists
)

type VisitorRepository interface {
	Create(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)
	FindByCookieID(ctx context.Context, cookieID string) (domain.Visitor, error)
	FindByCookieIDWithVisits(ctx context.Context, cookieID string) (domain.Visitor, error)
	FindByPhone(ctx context.Context, phone string) (domain.Visitor, error)
	FindAll(ctx context.Context) ([]domain.Visitor, error)
	Update(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)
}

type VisitorBoothCounter interface {
	Count(ctx context.Context) (int, error)
}

// VisitorProfile is the visitor's own view: their record with visits,
// plus the achievement projection against the current booth count.
type VisitorProfile struct {
	Visitor      domain.Visitor       `json:"visitor"`
	TotalBooths  int                  `json:"total_booths"`
	Achievements []domain.Achievement `json:"achievements"`
}

type VisitorService struct {
	repo   VisitorRepository
	booths VisitorBoothCounter
}

func NewVisitorService(repo VisitorRepository, booths VisitorBoothCounter) *VisitorService {
	return &VisitorService{
		repo:   repo,
		booths: booths,
	}
}

// Register creates a visitor with a fresh cookie token. A visitor who
// registers again with a known phone number gets their existing record
// and token back instead of a duplicate.
func (s *VisitorService) Register(ctx context.Context, visitor domain.Visitor) (domain.Visitor, bool, error) {
	if visitor.Phone != nil {
		existing, err := s.repo.FindByPhone(ctx, *visitor.Phone)
		if err == nil {
			return existing, true, nil
		}
		if !errors.Is(err, repository.ErrVisitorNotFound) {
			return domain.Visitor{}, false, fmt.Errorf("s.repo.FindByPhone -> %w", err)
		}
	}

	cookieID, err := token.NewCookieID()
	if err != nil {
		return domain.Visitor{}, false, fmt.Errorf("token.NewCookieID -> %w", err)
	}
	visitor.CookieID = cookieID

	created, err := s.repo.Create(ctx, visitor)
	if err != nil {
		return domain.Visitor{}, false, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, false, nil
}

// CheckRegistration reports whether the cookie token still maps to a
// visitor, without failing when it does not.
func (s *VisitorService) CheckRegistration(ctx context.Context, cookieID string) (domain.Visitor, bool, error) {
	visitor, err := s.repo.FindByCookieID(ctx, cookieID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return domain.Visitor{}, false, nil
		}

		return domain.Visitor{}, false, fmt.Errorf("s.repo.FindByCookieID -> %w", err)
	}

	return visitor, true, nil
}

// GetProfile loads the visitor with their visits (newest first) and
// computes achievements against the current booth count.
func (s *VisitorService) GetProfile(ctx context.Context, cookieID string) (VisitorProfile, error) {
	visitor, err := s.repo.FindByCookieIDWithVisits(ctx, cookieID)
	if err != nil {
		return VisitorProfile{}, fmt.Errorf("s.repo.FindByCookieIDWithVisits -> %w", err)
	}

	totalBooths, err := s.booths.Count(ctx)
	if err != nil {
		return VisitorProfile{}, fmt.Errorf("s.booths.Count -> %w", err)
	}

	return VisitorProfile{
		Visitor:      visitor,
		TotalBooths:  totalBooths,
		Achievements: domain.ComputeAchievements(len(visitor.Visits), totalBooths),
	}, nil
}

// UpdateProfile replaces the visitor's registration fields, keyed by
// their cookie token. Identity (ID, cookie) never changes.
func (s *VisitorService) UpdateProfile(ctx context.Context, cookieID string, updated domain.Visitor) (domain.Visitor, error) {
	existing, err := s.repo.FindByCookieID(ctx, cookieID)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("s.repo.FindByCookieID -> %w", err)
	}

	updated.ID = existing.ID
	updated.CookieID = existing.CookieID

	visitor, err := s.repo.Update(ctx, updated)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return visitor, nil
}

func (s *VisitorService) ListVisitors(ctx context.Context) ([]domain.Visitor, error) {
	visitors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return visitors, nil
}
