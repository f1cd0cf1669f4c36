package event

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sriram31Mech/EventHubPro-1/internal/auth"
)

// ===========================
// 🎯 Event Model
// ===========================

type Event struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"size:100;not null" json:"title"`
	Description   string     `gorm:"size:2000;not null" json:"description"`
	EventType     string     `gorm:"size:20;not null;index" json:"eventType"`
	Location      string     `gorm:"size:100;not null;index" json:"location"`
	Venue         string     `gorm:"size:200;not null" json:"venue"`
	StartDate     time.Time  `gorm:"not null;index" json:"startDate"`
	EndDate       time.Time  `gorm:"not null" json:"endDate"`
	StartTime     string     `gorm:"size:20" json:"startTime"`
	EndTime       string     `gorm:"size:20" json:"endTime"`
	Cost          string     `gorm:"size:20" json:"cost"`
	ImageURL      string     `gorm:"size:255" json:"imageUrl"`
	IsAiGenerated bool       `gorm:"not null;default:false" json:"isAiGenerated"`
	AdminID       string     `gorm:"type:uuid;index;not null" json:"adminId"`
	Admin         *auth.User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EventTypes are the only categories a listing may carry.
var EventTypes = []string{"conference", "workshop", "networking", "seminar"}

func isValidEventType(t string) bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ===========================
// 🎯 Request DTOs
// ===========================

// CreateEventRequest arrives as multipart form fields alongside the optional
// image file.
type CreateEventRequest struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	EventType     string `form:"eventType"`
	Location      string `form:"location"`
	Venue         string `form:"venue"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
	StartTime     string `form:"startTime"`
	EndTime       string `form:"endTime"`
	Cost          string `form:"cost"`
	IsAiGenerated bool   `form:"isAiGenerated"`
}

// UpdateEventRequest uses pointers so absent fields are left untouched while
// present-but-empty fields still fail validation.
type UpdateEventRequest struct {
	Title         *string `form:"title"`
	Description   *string `form:"description"`
	EventType     *string `form:"eventType"`
	Location      *string `form:"location"`
	Venue         *string `form:"venue"`
	StartDate     *string `form:"startDate"`
	EndDate       *string `form:"endDate"`
	StartTime     *string `form:"startTime"`
	EndTime       *string `form:"endTime"`
	Cost          *string `form:"cost"`
	IsAiGenerated *bool   `form:"isAiGenerated"`
}
