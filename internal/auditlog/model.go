package auditlog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ===========================
// 🎯 Audit Log Model
// ===========================

type AuditLog struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"size:36;index" json:"userId"`
	Action    string         `gorm:"size:50;not null" json:"action"`
	Target    string         `gorm:"size:50;not null" json:"target"`
	TargetID  string         `gorm:"size:36" json:"targetId"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ipAddress"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
