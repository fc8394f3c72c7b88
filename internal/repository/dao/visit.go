package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrVisitNotFound = errors.New("visit not found")
	ErrVisitExists   = errors.New("visit already logged for this booth")
)

type Visit struct {
	ID uint `gorm:"primaryKey"`

	// One visit per (visitor, booth) pair, enforced by the store so
	// concurrent duplicate requests cannot both succeed.
	VisitorID uint `gorm:"not null;uniqueIndex:idx_visits_visitor_booth"`
	BoothID   uint `gorm:"not null;uniqueIndex:idx_visits_visitor_booth"`

	Visitor Visitor `gorm:"constraint:OnDelete:CASCADE"`
	Booth   Booth   `gorm:"constraint:OnDelete:CASCADE"`

	VisitedAt time.Time `gorm:"not null"`
	IPAddress *string
	UserAgent *string

	Rating  *int
	Comment *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VisitDAO struct {
	db *gorm.DB
}

func NewVisitDAO(db *gorm.DB) *VisitDAO {
	return &VisitDAO{
		db: db,
	}
}

// Insert creates the visit directly and translates a unique violation
// on the (visitor, booth) pair into ErrVisitExists. No check-then-act.
func (d *VisitDAO) Insert(ctx context.Context, visit Visit) (Visit, error) {
	result := d.db.WithContext(ctx).Omit("Visitor", "Booth").Create(&visit)
	if result.Error != nil {
		if isUniqueViolation(result.Error, `idx_visits_visitor_booth`) {
			return Visit{}, ErrVisitExists
		}

		return Visit{}, result.Error
	}

	return visit, nil
}

func (d *VisitDAO) FindByID(ctx context.Context, id uint) (Visit, error) {
	var visit Visit

	result := d.db.WithContext(ctx).
		Preload("Booth").
		Preload("Visitor").
		First(&visit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visit{}, ErrVisitNotFound
		}

		return Visit{}, result.Error
	}

	return visit, nil
}

func (d *VisitDAO) FindAll(ctx context.Context) ([]Visit, error) {
	var visits []Visit

	result := d.db.WithContext(ctx).
		Preload("Booth").
		Preload("Visitor").
		Order("visited_at desc").
		Find(&visits)
	if result.Error != nil {
		return nil, result.Error
	}

	return visits, nil
}

func (d *VisitDAO) CountByVisitorID(ctx context.Context, visitorID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Visit{}).Where("visitor_id = ?", visitorID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// UpdateRating sets rating and comment only; VisitedAt never changes.
func (d *VisitDAO) UpdateRating(ctx context.Context, id uint, rating int, comment *string) (Visit, error) {
	result := d.db.WithContext(ctx).Model(&Visit{ID: id}).Updates(map[string]any{
		"rating":  rating,
		"comment": comment,
	})
	if result.Error != nil {
		return Visit{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Visit{}, ErrVisitNotFound
	}

	return d.FindByID(ctx, id)
}
