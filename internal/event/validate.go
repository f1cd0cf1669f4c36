package event

import (
	"strings"
	"time"
)

// ===========================
// 🎯 Event Validation
// ===========================

const dateLayout = "2006-01-02"

// validateCreate checks every field and collects all violations so the
// client can fix a form in one round trip.
func validateCreate(req CreateEventRequest) (start, end time.Time, fields map[string]string) {
	fields = map[string]string{}

	if l := len(strings.TrimSpace(req.Title)); l < 3 || l > 100 {
		fields["title"] = "title must be between 3 and 100 characters"
	}
	if l := len(strings.TrimSpace(req.Description)); l < 10 || l > 2000 {
		fields["description"] = "description must be between 10 and 2000 characters"
	}
	if !isValidEventType(req.EventType) {
		fields["eventType"] = "eventType must be one of conference, workshop, networking, seminar"
	}
	if l := len(strings.TrimSpace(req.Location)); l < 2 || l > 100 {
		fields["location"] = "location must be between 2 and 100 characters"
	}
	if l := len(strings.TrimSpace(req.Venue)); l < 3 || l > 200 {
		fields["venue"] = "venue must be between 3 and 200 characters"
	}
	if len(req.Cost) > 20 {
		fields["cost"] = "cost must be at most 20 characters"
	}
	if len(req.StartTime) > 20 {
		fields["startTime"] = "startTime must be at most 20 characters"
	}
	if len(req.EndTime) > 20 {
		fields["endTime"] = "endTime must be at most 20 characters"
	}

	var err error
	start, err = time.Parse(dateLayout, req.StartDate)
	if err != nil {
		fields["startDate"] = "startDate must be a valid YYYY-MM-DD date"
	}
	end, err = time.Parse(dateLayout, req.EndDate)
	if err != nil {
		fields["endDate"] = "endDate must be a valid YYYY-MM-DD date"
	}
	if fields["startDate"] == "" && fields["endDate"] == "" && end.Before(start) {
		fields["endDate"] = "endDate must not be before startDate"
	}

	return start, end, fields
}

// applyUpdate merges a partial update onto an existing event, validating the
// merged result. It mutates a copy and returns it only when valid.
func applyUpdate(existing Event, req UpdateEventRequest) (Event, map[string]string) {
	merged := existing

	if req.Title != nil {
		merged.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		merged.Description = strings.TrimSpace(*req.Description)
	}
	if req.EventType != nil {
		merged.EventType = strings.TrimSpace(*req.EventType)
	}
	if req.Location != nil {
		merged.Location = strings.TrimSpace(*req.Location)
	}
	if req.Venue != nil {
		merged.Venue = strings.TrimSpace(*req.Venue)
	}
	if req.StartTime != nil {
		merged.StartTime = strings.TrimSpace(*req.StartTime)
	}
	if req.EndTime != nil {
		merged.EndTime = strings.TrimSpace(*req.EndTime)
	}
	if req.Cost != nil {
		merged.Cost = strings.TrimSpace(*req.Cost)
	}
	if req.IsAiGenerated != nil {
		merged.IsAiGenerated = *req.IsAiGenerated
	}

	fields := map[string]string{}

	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			fields["startDate"] = "startDate must be a valid YYYY-MM-DD date"
		} else {
			merged.StartDate = start
		}
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			fields["endDate"] = "endDate must be a valid YYYY-MM-DD date"
		} else {
			merged.EndDate = end
		}
	}

	if l := len(merged.Title); l < 3 || l > 100 {
		fields["title"] = "title must be between 3 and 100 characters"
	}
	if l := len(merged.Description); l < 10 || l > 2000 {
		fields["description"] = "description must be between 10 and 2000 characters"
	}
	if !isValidEventType(merged.EventType) {
		fields["eventType"] = "eventType must be one of conference, workshop, networking, seminar"
	}
	if l := len(merged.Location); l < 2 || l > 100 {
		fields["location"] = "location must be between 2 and 100 characters"
	}
	if l := len(merged.Venue); l < 3 || l > 200 {
		fields["venue"] = "venue must be between 3 and 200 characters"
	}
	if len(merged.Cost) > 20 {
		fields["cost"] = "cost must be at most 20 characters"
	}
	if len(merged.StartTime) > 20 {
		fields["startTime"] = "startTime must be at most 20 characters"
	}
	if len(merged.EndTime) > 20 {
		fields["endTime"] = "endTime must be at most 20 characters"
	}
	if fields["startDate"] == "" && fields["endDate"] == "" && merged.EndDate.Before(merged.StartDate) {
		fields["endDate"] = "endDate must not be before startDate"
	}

	return merged, fields
}
