package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Slogan      *string
	Venue       string    `gorm:"not null"`
	DateStart   time.Time `gorm:"not null"`
	DateEnd     time.Time `gorm:"not null"`
	Description *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// FindFirst returns the first event row. The application keeps at most
// one; the first row wins if more ever exist.
func (d *EventDAO) FindFirst(ctx context.Context) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Order("id").First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{ID: event.ID}).Updates(map[string]any{
		"name":        event.Name,
		"slogan":      event.Slogan,
		"venue":       event.Venue,
		"date_start":  event.DateStart,
		"date_end":    event.DateEnd,
		"description": event.Description,
	})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	var updated Event
	if err := d.db.WithContext(ctx).First(&updated, event.ID).Error; err != nil {
		return Event{}, err
	}

	return updated, nil
}
