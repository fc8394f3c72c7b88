package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBoothNotFound     = errors.New("booth not found")
	ErrBoothNumberExists = errors.New("booth number already exists")
	ErrHashcodeExists    = errors.New("booth hashcode already exists")
)

type Booth struct {
	ID uint `gorm:"primaryKey"`

	BoothNumber      *string `gorm:"unique"`
	BoothName        string  `gorm:"not null"`
	Ministry         string  `gorm:"not null"`
	Agency           string  `gorm:"not null"`
	AbbreviationName string  `gorm:"not null"`

	// Hashcode is the opaque token embedded in the booth's QR code.
	Hashcode        string `gorm:"unique;not null"`
	QRCodeGenerated bool   `gorm:"not null;default:false"`

	PICName  *string
	PICPhone *string
	PICEmail *string

	Visits []Visit `gorm:"foreignKey:BoothID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type BoothDAO struct {
	db *gorm.DB
}

func NewBoothDAO(db *gorm.DB) *BoothDAO {
	return &BoothDAO{
		db: db,
	}
}

func (d *BoothDAO) Insert(ctx context.Context, booth Booth) (Booth, error) {
	result := d.db.WithContext(ctx).Create(&booth)
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_booths_booth_number`) {
			return Booth{}, ErrBoothNumberExists
		}
		if isUniqueViolation(result.Error, `uni_booths_hashcode`) {
			return Booth{}, ErrHashcodeExists
		}

		return Booth{}, result.Error
	}

	return booth, nil
}

func (d *BoothDAO) FindByID(ctx context.Context, id uint) (Booth, error) {
	var booth Booth

	result := d.db.WithContext(ctx).First(&booth, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booth{}, ErrBoothNotFound
		}

		return Booth{}, result.Error
	}

	return booth, nil
}

func (d *BoothDAO) FindByHashcode(ctx context.Context, hashcode string) (Booth, error) {
	var booth Booth

	result := d.db.WithContext(ctx).First(&booth, "hashcode = ?", hashcode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booth{}, ErrBoothNotFound
		}

		return Booth{}, result.Error
	}

	return booth, nil
}

func (d *BoothDAO) FindByBoothNumber(ctx context.Context, boothNumber string) (Booth, error) {
	var booth Booth

	result := d.db.WithContext(ctx).First(&booth, "booth_number = ?", boothNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booth{}, ErrBoothNotFound
		}

		return Booth{}, result.Error
	}

	return booth, nil
}

func (d *BoothDAO) FindAll(ctx context.Context) ([]Booth, error) {
	var booths []Booth

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&booths)
	if result.Error != nil {
		return nil, result.Error
	}

	return booths, nil
}

// CountVisitsPerBooth returns a map of booth ID to visit count.
func (d *BoothDAO) CountVisitsPerBooth(ctx context.Context) (map[uint]int, error) {
	type row struct {
		BoothID uint
		Count   int
	}

	var rows []row
	result := d.db.WithContext(ctx).
		Model(&Visit{}).
		Select("booth_id, count(*) as count").
		Group("booth_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.BoothID] = r.Count
	}

	return counts, nil
}

func (d *BoothDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Booth{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *BoothDAO) Update(ctx context.Context, booth Booth) (Booth, error) {
	result := d.db.WithContext(ctx).Model(&Booth{ID: booth.ID}).Updates(map[string]any{
		"booth_number":      booth.BoothNumber,
		"booth_name":        booth.BoothName,
		"ministry":          booth.Ministry,
		"agency":            booth.Agency,
		"abbreviation_name": booth.AbbreviationName,
		"pic_name":          booth.PICName,
		"pic_phone":         booth.PICPhone,
		"pic_email":         booth.PICEmail,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_booths_booth_number`) {
			return Booth{}, ErrBoothNumberExists
		}

		return Booth{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Booth{}, ErrBoothNotFound
	}

	return d.FindByID(ctx, booth.ID)
}

func (d *BoothDAO) SetQRCodeGenerated(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Booth{ID: id}).Update("qr_code_generated", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoothNotFound
	}

	return nil
}

// Delete removes the booth; its visits go with it via FK cascade.
func (d *BoothDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Booth{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoothNotFound
	}

	return nil
}
