package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrVisitorNotFound    = errors.New("visitor not found")
	ErrVisitorEmailExists = errors.New("visitor email already exists")
	ErrVisitorPhoneExists = errors.New("visitor phone already exists")
)

type Visitor struct {
	ID uint `gorm:"primaryKey"`

	Name        string  `gorm:"not null"`
	Email       string  `gorm:"unique;not null"`
	Phone       *string `gorm:"unique"`
	Gender      string  `gorm:"not null"`
	State       *string
	Age         *int
	VisitorType *string
	Sektor      *string

	// CookieID is the opaque session token identifying the visitor
	// across requests without a login.
	CookieID string `gorm:"unique;not null"`

	Visits []Visit `gorm:"foreignKey:VisitorID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VisitorDAO struct {
	db *gorm.DB
}

func NewVisitorDAO(db *gorm.DB) *VisitorDAO {
	return &VisitorDAO{
		db: db,
	}
}

func (d *VisitorDAO) Insert(ctx context.Context, visitor Visitor) (Visitor, error) {
	result := d.db.WithContext(ctx).Create(&visitor)
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_visitors_email`) {
			return Visitor{}, ErrVisitorEmailExists
		}
		if isUniqueViolation(result.Error, `uni_visitors_phone`) {
			return Visitor{}, ErrVisitorPhoneExists
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *VisitorDAO) FindByID(ctx context.Context, id uint) (Visitor, error) {
	var visitor Visitor

	result := d.db.WithContext(ctx).First(&visitor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visitor{}, ErrVisitorNotFound
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *VisitorDAO) FindByCookieID(ctx context.Context, cookieID string) (Visitor, error) {
	var visitor Visitor

	result := d.db.WithContext(ctx).First(&visitor, "cookie_id = ?", cookieID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visitor{}, ErrVisitorNotFound
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

// FindByCookieIDWithVisits loads the visitor with visits newest-first,
// each visit carrying its booth for display.
func (d *VisitorDAO) FindByCookieIDWithVisits(ctx context.Context, cookieID string) (Visitor, error) {
	var visitor Visitor

	result := d.db.WithContext(ctx).
		Preload("Visits", func(db *gorm.DB) *gorm.DB {
			return db.Order("visits.visited_at desc")
		}).
		Preload("Visits.Booth").
		First(&visitor, "cookie_id = ?", cookieID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visitor{}, ErrVisitorNotFound
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *VisitorDAO) FindByPhone(ctx context.Context, phone string) (Visitor, error) {
	var visitor Visitor

	result := d.db.WithContext(ctx).First(&visitor, "phone = ?", phone)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visitor{}, ErrVisitorNotFound
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *VisitorDAO) FindByEmail(ctx context.Context, email string) (Visitor, error) {
	var visitor Visitor

	result := d.db.WithContext(ctx).First(&visitor, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Visitor{}, ErrVisitorNotFound
		}

		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *VisitorDAO) FindAll(ctx context.Context) ([]Visitor, error) {
	var visitors []Visitor

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&visitors)
	if result.Error != nil {
		return nil, result.Error
	}

	return visitors, nil
}

func (d *VisitorDAO) Update(ctx context.Context, visitor Visitor) (Visitor, error) {
	result := d.db.WithContext(ctx).Model(&Visitor{ID: visitor.ID}).Updates(map[string]any{
		"name":         visitor.Name,
		"email":        visitor.Email,
		"phone":        visitor.Phone,
		"gender":       visitor.Gender,
		"state":        visitor.State,
		"age":          visitor.Age,
		"visitor_type": visitor.VisitorType,
		"sektor":       visitor.Sektor,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_visitors_email`) {
			return Visitor{}, ErrVisitorEmailExists
		}
		if isUniqueViolation(result.Error, `uni_visitors_phone`) {
			return Visitor{}, ErrVisitorPhoneExists
		}

		return Visitor{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Visitor{}, ErrVisitorNotFound
	}

	return d.FindByID(ctx, visitor.ID)
}
