package event

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auditlog"
	"github.com/Sriram31Mech/EventHubPro-1/internal/notification"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
	"github.com/Sriram31Mech/EventHubPro-1/utils"
)

// ===========================
// 🎯 Event Service
// ===========================

const (
	catalogCacheKey = "events:catalog"
	catalogCacheTTL = 60 * time.Second
)

type Service interface {
	List(params SearchParams) ([]Event, error)
	GetByID(id string) (*Event, error)
	ListByAdmin(adminID string) ([]Event, error)
	Create(ctx context.Context, identity middleware.Identity, req CreateEventRequest, image *multipart.FileHeader, ip string) (*Event, error)
	Update(ctx context.Context, identity middleware.Identity, id string, req UpdateEventRequest, image *multipart.FileHeader, ip string) (*Event, error)
	Delete(ctx context.Context, identity middleware.Identity, id, ip string) error
}

type service struct {
	repo     Repository
	images   ImageStore
	audit    auditlog.Service
	notifier notification.Service
}

func NewService(repo Repository, images ImageStore, audit auditlog.Service, notifier notification.Service) Service {
	return &service{repo: repo, images: images, audit: audit, notifier: notifier}
}

// List serves the public catalog. The unfiltered listing is the hot path and
// comes from cache when possible; filtered queries always hit the database.
func (s *service) List(params SearchParams) ([]Event, error) {
	params = params.Normalize()

	if params.IsEmpty() {
		if cached := utils.CacheGet(catalogCacheKey); cached != "" {
			var events []Event
			if err := json.Unmarshal([]byte(cached), &events); err == nil {
				return events, nil
			}
		}

		events, err := s.repo.GetAll()
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(events); err == nil {
			utils.CacheSet(catalogCacheKey, string(data), catalogCacheTTL)
		}
		return events, nil
	}

	return s.repo.Search(params)
}

func (s *service) GetByID(id string) (*Event, error) {
	ev, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperror.ErrNotFound
	}
	return ev, nil
}

func (s *service) ListByAdmin(adminID string) ([]Event, error) {
	return s.repo.ListByAdmin(adminID)
}

// Create validates the request and persists a new listing. Ownership always
// comes from the caller identity; any adminId in the payload is ignored.
func (s *service) Create(ctx context.Context, identity middleware.Identity, req CreateEventRequest, image *multipart.FileHeader, ip string) (*Event, error) {
	if identity.Role != middleware.RoleAdmin {
		return nil, apperror.ErrForbidden
	}

	start, end, fields := validateCreate(req)
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	ev := &Event{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		EventType:     req.EventType,
		Location:      strings.TrimSpace(req.Location),
		Venue:         strings.TrimSpace(req.Venue),
		StartDate:     start,
		EndDate:       end,
		StartTime:     strings.TrimSpace(req.StartTime),
		EndTime:       strings.TrimSpace(req.EndTime),
		Cost:          strings.TrimSpace(req.Cost),
		IsAiGenerated: req.IsAiGenerated,
		AdminID:       identity.UserID,
	}

	if image != nil {
		url, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		ev.ImageURL = url
	}

	if err := s.repo.Create(ev); err != nil {
		return nil, err
	}

	utils.CacheDel(catalogCacheKey)
	s.audit.LogAction(identity.UserID, "EVENT_CREATED", "event", ev.ID, ip, map[string]interface{}{"title": ev.Title})
	s.notifier.PublishEventActivity(ctx, "created", ev.ID, ev.Title, identity.UserID)

	return ev, nil
}

// Update applies a partial update to a listing the caller owns.
func (s *service) Update(ctx context.Context, identity middleware.Identity, id string, req UpdateEventRequest, image *multipart.FileHeader, ip string) (*Event, error) {
	if identity.Role != middleware.RoleAdmin {
		return nil, apperror.ErrForbidden
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrNotFound
	}
	if existing.AdminID != identity.UserID {
		return nil, apperror.ErrForbidden
	}

	merged, fields := applyUpdate(*existing, req)
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	if image != nil {
		url, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		merged.ImageURL = url
	}

	// Ownership never moves, whatever the payload said.
	merged.AdminID = existing.AdminID

	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}

	utils.CacheDel(catalogCacheKey)
	s.audit.LogAction(identity.UserID, "EVENT_UPDATED", "event", merged.ID, ip, map[string]interface{}{"title": merged.Title})
	s.notifier.PublishEventActivity(ctx, "updated", merged.ID, merged.Title, identity.UserID)

	return &merged, nil
}

// Delete removes a listing the caller owns. A missing event and someone
// else's event both come back as not found, so the endpoint leaks nothing
// about other admins' listings.
func (s *service) Delete(ctx context.Context, identity middleware.Identity, id, ip string) error {
	if identity.Role != middleware.RoleAdmin {
		return apperror.ErrForbidden
	}

	affected, err := s.repo.Delete(id, identity.UserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.ErrNotFound
	}

	utils.CacheDel(catalogCacheKey)
	s.audit.LogAction(identity.UserID, "EVENT_DELETED", "event", id, ip, nil)
	s.notifier.PublishEventActivity(ctx, "deleted", id, "", identity.UserID)

	return nil
}
