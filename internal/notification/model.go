package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================
// 🎯 Notification Model
// ===========================

type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"userId"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"size:500" json:"body"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// ActivityMessage is the payload published to the activity topic whenever
// an event listing is created, updated or deleted.
type ActivityMessage struct {
	Action     string `json:"action"`
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`
	AdminID    string `json:"adminId"`
	OccurredAt string `json:"occurredAt"`
}
