package api

import "time"

// Event mirrors the backend event representation.
type Event struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Location     string   `json:"location"`
	Category     string   `json:"category,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	RSVPRequired bool     `json:"rsvpRequired"`
	Capacity     *int     `json:"capacity,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Price        float64  `json:"price,omitempty"`
	EventAccess  string   `json:"eventAccess,omitempty"`
	IsPrivate    bool     `json:"isPrivate"`

	InvitedUserIDs []string `json:"invitedUserIds,omitempty"`
	CreatorID      string   `json:"creatorID"`

	Likes      int      `json:"likes"`
	RSVPs      []string `json:"rsvps"`
	UserLiked  bool     `json:"userLiked"`
	UserRsvped bool     `json:"userRsvped"`
}

// Access levels as stored by the backend.
const (
	AccessPublic   = "Public"
	AccessPrivate  = "Private"
	AccessInactive = "Inactive"
)

// Event timestamps arrive in the backend's layout; the create form
// historically sent the HTML datetime-local layout, so both are accepted.
const (
	TimeLayout     = "2006-01-02 15:04:05"
	timeLayoutForm = "2006-01-02T15:04"
)

// ParseEventTime parses an event timestamp in any of the accepted layouts.
func ParseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(timeLayoutForm, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Start returns the parsed start timestamp.
func (e Event) Start() (time.Time, error) {
	return ParseEventTime(e.StartDate)
}

// End returns the parsed end timestamp, or the zero time when unset.
func (e Event) End() (time.Time, error) {
	if e.EndDate == "" {
		return time.Time{}, nil
	}
	return ParseEventTime(e.EndDate)
}

// CategorySet merges the primary category with any additional ones,
// preserving order and dropping duplicates.
func (e Event) CategorySet() []string {
	seen := make(map[string]bool, len(e.Categories)+1)
	var out []string
	add := func(c string) {
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	add(e.Category)
	for _, c := range e.Categories {
		add(c)
	}
	return out
}

// Private reports whether the event is invite-only.
func (e Event) Private() bool {
	return e.IsPrivate || e.EventAccess == AccessPrivate
}

// RSVPCount returns the number of RSVPed viewers.
func (e Event) RSVPCount() int {
	return len(e.RSVPs)
}

// User mirrors the identity object returned by POST /login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoleFaculty is the privileged role: it may edit or delete any event.
const RoleFaculty = "Faculty"

// InviteCandidate is the id+name user subset used by the invite picker.
type InviteCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateEventRequest is the POST /events payload.
type CreateEventRequest struct {
	CreatorID      string   `json:"creatorID" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate,omitempty"`
	Categories     []string `json:"categories" validate:"required,min=1"`
	RSVPRequired   bool     `json:"rsvpRequired"`
	Capacity       *int     `json:"capacity,omitempty"`
	ImageURL       string   `json:"imageUrl"`
	Price          float64  `json:"price" validate:"gte=0"`
	IsPrivate      bool     `json:"isPrivate"`
	InvitedUserIDs []string `json:"invitedUserIds"`
}

// UpdateEventRequest is the PUT /events/:id payload. Only non-nil fields are
// applied; UpdaterID identifies who is attempting the change.
type UpdateEventRequest struct {
	UpdaterID      string    `json:"updaterID"`
	Title          *string   `json:"title,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Location       *string   `json:"location,omitempty"`
	StartDate      *string   `json:"startDate,omitempty"`
	EndDate        *string   `json:"endDate,omitempty"`
	Categories     []string  `json:"categories,omitempty"`
	RSVPRequired   *bool     `json:"rsvpRequired,omitempty"`
	Capacity       *int      `json:"capacity,omitempty"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	Price          *float64  `json:"price,omitempty"`
	IsPrivate      *bool     `json:"isPrivate,omitempty"`
	InvitedUserIDs *[]string `json:"invitedUserIds,omitempty"`
}

// Empty reports whether the update carries no field changes at all.
func (r UpdateEventRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Location == nil &&
		r.StartDate == nil && r.EndDate == nil && r.Categories == nil &&
		r.RSVPRequired == nil && r.Capacity == nil && r.ImageURL == nil &&
		r.Price == nil && r.IsPrivate == nil && r.InvitedUserIDs == nil
}

// RegisterRequest is the POST /register payload.
type RegisterRequest struct {
	AccountID   string `json:"accountID" validate:"required"`
	AccountType string `json:"accountType" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

// RegisterResponse is the POST /register success body.
type RegisterResponse struct {
	Message string `json:"message"`
}

// VerifyRequest is the POST /verify payload.
type VerifyRequest struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
}

// SearchFilter holds the optional GET /search parameters.
type SearchFilter struct {
	Title     string
	Category  string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
