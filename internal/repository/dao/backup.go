package dao

import (
	"context"

	"gorm.io/gorm"
)

// BackupDAO groups the full-table reads behind backup snapshots and the
// destructive operations behind reset/restore.
type BackupDAO struct {
	db *gorm.DB
}

func NewBackupDAO(db *gorm.DB) *BackupDAO {
	return &BackupDAO{
		db: db,
	}
}

func (d *BackupDAO) SnapshotBooths(ctx context.Context) ([]Booth, error) {
	var booths []Booth

	result := d.db.WithContext(ctx).Preload("Visits").Find(&booths)
	if result.Error != nil {
		return nil, result.Error
	}

	return booths, nil
}

func (d *BackupDAO) SnapshotVisitors(ctx context.Context) ([]Visitor, error) {
	var visitors []Visitor

	result := d.db.WithContext(ctx).Preload("Visits").Find(&visitors)
	if result.Error != nil {
		return nil, result.Error
	}

	return visitors, nil
}

func (d *BackupDAO) SnapshotVisits(ctx context.Context) ([]Visit, error) {
	var visits []Visit

	result := d.db.WithContext(ctx).Preload("Booth").Preload("Visitor").Find(&visits)
	if result.Error != nil {
		return nil, result.Error
	}

	return visits, nil
}

// WipeAll deletes every visit, visitor and booth in one transaction,
// children before parents to satisfy the foreign keys.
func (d *BackupDAO) WipeAll(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Visit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Visitor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Booth{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// RestoreBooth inserts a booth with a fresh identity. The caller zeroes
// the ID; CreatedAt/UpdatedAt from the backup are preserved because
// gorm only auto-fills them when zero.
func (d *BackupDAO) RestoreBooth(ctx context.Context, booth Booth) (Booth, error) {
	booth.Visits = nil

	result := d.db.WithContext(ctx).Create(&booth)
	if result.Error != nil {
		return Booth{}, result.Error
	}

	return booth, nil
}

func (d *BackupDAO) RestoreVisitor(ctx context.Context, visitor Visitor) (Visitor, error) {
	visitor.Visits = nil

	result := d.db.WithContext(ctx).Create(&visitor)
	if result.Error != nil {
		return Visitor{}, result.Error
	}

	return visitor, nil
}

func (d *BackupDAO) RestoreVisit(ctx context.Context, visit Visit) (Visit, error) {
	result := d.db.WithContext(ctx).Omit("Visitor", "Booth").Create(&visit)
	if result.Error != nil {
		return Visit{}, result.Error
	}

	return visit, nil
}
