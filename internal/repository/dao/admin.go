package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAdminEmailExists = errors.New("admin email already exists")
	ErrAdminNotFound    = errors.New("admin not found")
)

type Admin struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Role     string `gorm:"not null;default:admin"` // "admin" or "super_admin"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

func (d *AdminDAO) Insert(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_admins_email`) {
			return Admin{}, ErrAdminEmailExists
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, id uint) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByEmail(ctx context.Context, email string) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindAll(ctx context.Context) ([]Admin, error) {
	var admins []Admin

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}

	return admins, nil
}

func (d *AdminDAO) Update(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Model(&Admin{ID: admin.ID}).Updates(map[string]any{
		"email":    admin.Email,
		"password": admin.Password,
		"name":     admin.Name,
		"role":     admin.Role,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error, `uni_admins_email`) {
			return Admin{}, ErrAdminEmailExists
		}

		return Admin{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Admin{}, ErrAdminNotFound
	}

	return d.FindByID(ctx, admin.ID)
}

func (d *AdminDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Admin{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
