package auditlog

import (
	"encoding/json"
	"log"
)

// ===========================
// 🎯 Audit Log Service
// ===========================

type Service interface {
	LogAction(userID, action, target, targetID, ip string, details map[string]interface{})
	List(userID string, limit, offset int) ([]AuditLog, int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records an audit entry. Failures are logged and swallowed so an
// audit hiccup never fails the operation being audited.
func (s *service) LogAction(userID, action, target, targetID, ip string, details map[string]interface{}) {
	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		Target:    target,
		TargetID:  targetID,
		IPAddress: ip,
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			entry.Details = data
		}
	}

	if err := s.repo.Create(entry); err != nil {
		log.Printf("⚠️ audit log write failed: %v", err)
	}
}

func (s *service) List(userID string, limit, offset int) ([]AuditLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(userID, limit, offset)
}
