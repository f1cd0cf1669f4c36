package event

import (
	"errors"

	"gorm.io/gorm"
)

// ===========================
// 🎯 Event Repository
// ===========================

type Repository interface {
	GetAll() ([]Event, error)
	Search(params SearchParams) ([]Event, error)
	GetByID(id string) (*Event, error)
	ListByAdmin(adminID string) ([]Event, error)
	Create(event *Event) error
	Update(event *Event) error
	Delete(id, adminID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetAll returns the public catalog, newest first. The join drops listings
// whose owner row no longer exists instead of serving them ownerless.
func (r *repository) GetAll() ([]Event, error) {
	var events []Event
	err := r.db.
		Joins("JOIN users ON users.id = events.admin_id").
		Preload("Admin").
		Order("events.created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Search applies the active filters with AND semantics, same ordering and
// owner join as GetAll.
func (r *repository) Search(params SearchParams) ([]Event, error) {
	q := r.db.
		Joins("JOIN users ON users.id = events.admin_id").
		Preload("Admin")

	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where(
			"events.title ILIKE ? OR events.description ILIKE ? OR events.venue ILIKE ? OR events.location ILIKE ?",
			like, like, like, like,
		)
	}
	if params.EventType != "" {
		q = q.Where("events.event_type = ?", params.EventType)
	}
	if params.Location != "" {
		q = q.Where("events.location ILIKE ?", "%"+params.Location+"%")
	}
	if from, to, ok := params.DayWindow(); ok {
		q = q.Where("events.start_date >= ? AND events.start_date < ?", from, to)
	}

	var events []Event
	err := q.Order("events.created_at DESC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) GetByID(id string) (*Event, error) {
	var ev Event
	err := r.db.Preload("Admin").First(&ev, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *repository) ListByAdmin(adminID string) ([]Event, error) {
	var events []Event
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) Update(event *Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event only if it belongs to adminID. Both conditions sit
// in one predicate so a concurrent owner change cannot slip between a check
// and the delete. Returns the number of rows removed.
func (r *repository) Delete(id, adminID string) (int64, error) {
	result := r.db.Where("id = ? AND admin_id = ?", id, adminID).Delete(&Event{})
	return result.RowsAffected, result.Error
}
