package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/utils"
)

// ===========================
// 🎯 Notification Service
// ===========================

type Service interface {
	PublishEventActivity(ctx context.Context, action, eventID, eventTitle, adminID string)
	ListByUser(userID string) ([]Notification, error)
	MarkRead(id, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishEventActivity emits an activity message for an event mutation. When
// the Kafka producer is up the message goes through the topic and the
// consumer materialises the notification; otherwise it is written directly.
// Either way the caller never blocks on delivery problems.
func (s *service) PublishEventActivity(ctx context.Context, action, eventID, eventTitle, adminID string) {
	msg := ActivityMessage{
		Action:     action,
		EventID:    eventID,
		EventTitle: eventTitle,
		AdminID:    adminID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if utils.KafkaEnabled() {
		if err := utils.PublishJSON(ctx, eventID, msg); err != nil {
			log.Printf("⚠️ activity publish failed, delivering directly: %v", err)
			s.deliver(msg)
		}
		return
	}
	s.deliver(msg)
}

// deliver materialises an activity message as an in-app notification.
func (s *service) deliver(msg ActivityMessage) {
	n := &Notification{
		UserID: msg.AdminID,
		Title:  fmt.Sprintf("Event %s", msg.Action),
		Body:   fmt.Sprintf("Your event %q was %s", msg.EventTitle, msg.Action),
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("⚠️ notification write failed: %v", err)
	}
}

func (s *service) ListByUser(userID string) ([]Notification, error) {
	return s.repo.ListByUser(userID, 50)
}

func (s *service) MarkRead(id, userID string) error {
	affected, err := s.repo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
