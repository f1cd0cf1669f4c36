package auditlog

import "gorm.io/gorm"

// ===========================
// 🎯 Audit Log Repository
// ===========================

type Repository interface {
	Create(entry *AuditLog) error
	ListByUser(userID string, limit, offset int) ([]AuditLog, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(entry *AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *repository) ListByUser(userID string, limit, offset int) ([]AuditLog, int64, error) {
	var logs []AuditLog
	var total int64

	q := r.db.Model(&AuditLog{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
