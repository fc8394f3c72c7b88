package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

var (
	ErrVisitNotFound  = repository.ErrVisitNotFound
	ErrAlreadyVisited = repository.ErrVisitExists
	ErrVisitForbidden = errors.New("visit belongs to another visitor")
)

type VisitRepository interface {
	Create(ctx context.Context, visit domain.Visit) (domain.Visit, error)
	FindByID(ctx context.Context, id uint) (domain.Visit, error)
	FindAll(ctx context.Context) ([]domain.Visit, error)
	SetRating(ctx context.Context, id uint, rating int, comment *string) (domain.Visit, error)
}

type VisitVisitorRepository interface {
	FindByCookieID(ctx context.Context, cookieID string) (domain.Visitor, error)
}

type VisitBoothRepository interface {
	FindByHashcode(ctx context.Context, hashcode string) (domain.Booth, error)
}

type VisitService struct {
	repo     VisitRepository
	visitors VisitVisitorRepository
	booths   VisitBoothRepository
}

func NewVisitService(repo VisitRepository, visitors VisitVisitorRepository, booths VisitBoothRepository) *VisitService {
	return &VisitService{
		repo:     repo,
		visitors: visitors,
		booths:   booths,
	}
}

// LogVisit records that the visitor behind cookieID scanned the booth
// with the given hashcode. The insert is attempted directly; the
// store's unique (visitor, booth) constraint decides duplicates, so
// concurrent double-taps cannot both succeed.
func (s *VisitService) LogVisit(ctx context.Context, cookieID, hashcode string, ipAddress, userAgent *string) (domain.Visit, error) {
	visitor, err := s.visitors.FindByCookieID(ctx, cookieID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return domain.Visit{}, ErrVisitorNotFound
		}

		return domain.Visit{}, fmt.Errorf("s.visitors.FindByCookieID -> %w", err)
	}

	booth, err := s.booths.FindByHashcode(ctx, hashcode)
	if err != nil {
		if errors.Is(err, repository.ErrBoothNotFound) {
			return domain.Visit{}, ErrBoothNotFound
		}

		return domain.Visit{}, fmt.Errorf("s.booths.FindByHashcode -> %w", err)
	}

	visit, err := s.repo.Create(ctx, domain.Visit{
		VisitorID: visitor.ID,
		BoothID:   booth.ID,
		VisitedAt: time.Now(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
	if err != nil {
		if errors.Is(err, repository.ErrVisitExists) {
			return domain.Visit{}, ErrAlreadyVisited
		}

		return domain.Visit{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return visit, nil
}

// GetVisit returns the visit only if it belongs to the caller.
func (s *VisitService) GetVisit(ctx context.Context, cookieID string, visitID uint) (domain.Visit, error) {
	visit, err := s.repo.FindByID(ctx, visitID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if visit.Visitor == nil || visit.Visitor.CookieID != cookieID {
		return domain.Visit{}, ErrVisitForbidden
	}

	return visit, nil
}

// SetRating sets the rating and comment on the caller's visit. The
// operation is idempotent: the result is the same however many times it
// runs, and VisitedAt never changes.
func (s *VisitService) SetRating(ctx context.Context, cookieID string, visitID uint, rating int, comment *string) (domain.Visit, error) {
	visit, err := s.repo.FindByID(ctx, visitID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if visit.Visitor == nil || visit.Visitor.CookieID != cookieID {
		return domain.Visit{}, ErrVisitForbidden
	}

	updated, err := s.repo.SetRating(ctx, visitID, rating, comment)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("s.repo.SetRating -> %w", err)
	}

	return updated, nil
}
