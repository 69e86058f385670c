package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/campusevents/cli/internal/api"
)

// Categories is the fixed enumeration of event categories the backend
// accepts.
var Categories = []string{
	"Art", "Math", "Science", "Computer Science", "History",
	"Education", "Political Science", "Software Engineering",
	"Business", "Sports", "Honors", "Workshops",
	"Study Session", "Dissertation", "Performance", "Competition",
}

// DefaultImageURL is substituted when no banner image is chosen.
const DefaultImageURL = "https://placehold.co/600x400?text=Event"

// go-playground/validator suggests using a single instance of the validator.
var validate = validator.New()

// FieldError describes a single failed check on a draft field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all failed checks for a submission. It blocks
// the submission entirely: callers must not issue the network call when one
// is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid event: " + strings.Join(msgs, "; ")
}

// ValidCategory reports whether c is in the fixed category enumeration.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return true
		}
	}
	return false
}

// CanonicalCategory returns the enumeration spelling for c, or c unchanged
// when it is unknown.
func CanonicalCategory(c string) string {
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return known
		}
	}
	return c
}

// Event checks a create payload against the submission rules: required
// fields present, at least one known category, a parseable start time, and
// invitees when (and only when) the event is private. It returns a
// *ValidationError listing every failure, or nil when the draft may be
// submitted.
func Event(req api.CreateEventRequest) error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, ve := range verrs {
			switch ve.Tag() {
			case "required", "min":
				add(strings.ToLower(ve.Field()), "is required")
			case "gte":
				add(strings.ToLower(ve.Field()), "must not be negative")
			default:
				add(strings.ToLower(ve.Field()), "is invalid")
			}
		}
	}

	for _, c := range req.Categories {
		if !ValidCategory(c) {
			add("categories", fmt.Sprintf("%q is not a known category", c))
		}
	}

	if req.StartDate != "" {
		if _, err := api.ParseEventTime(req.StartDate); err != nil {
			add("startdate", fmt.Sprintf("%q is not a valid timestamp", req.StartDate))
		}
	}
	if req.EndDate != "" {
		if _, err := api.ParseEventTime(req.EndDate); err != nil {
			add("enddate", fmt.Sprintf("%q is not a valid timestamp", req.EndDate))
		}
	}

	if req.Capacity != nil && *req.Capacity <= 0 {
		add("capacity", "must be greater than zero")
	}

	if req.IsPrivate && len(req.InvitedUserIDs) == 0 {
		add("invitedUserIds", "a private event needs at least one invitee")
	}
	if !req.IsPrivate && len(req.InvitedUserIDs) > 0 {
		add("invitedUserIds", "only private events carry invitees")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// EventUpdate checks the fields a partial edit carries. The create-time
// rules apply to whichever fields are present; absent fields pass.
func EventUpdate(req api.UpdateEventRequest) error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		add("title", "is required")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		add("description", "is required")
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		add("location", "is required")
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		add("capacity", "must be greater than zero")
	}
	if req.Price != nil && *req.Price < 0 {
		add("price", "must not be negative")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
