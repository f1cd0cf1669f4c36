package notification

import (
	"errors"

	"gorm.io/gorm"
)

// ===========================
// 🎯 Notification Repository
// ===========================

type Repository interface {
	Create(n *Notification) error
	ListByUser(userID string, limit int) ([]Notification, error)
	MarkRead(id, userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repository) ListByUser(userID string, limit int) ([]Notification, error) {
	var notifications []Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips the read flag only when the row belongs to userID. The
// ownership check lives in the WHERE clause so there is no read-then-write
// window.
func (r *repository) MarkRead(id, userID string) (int64, error) {
	result := r.db.Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}
