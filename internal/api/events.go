package api

import (
	"fmt"
	"net/url"
)

// ListEvents fetches all active events, with viewer flags filled in when a
// user ID is configured.
func (c *Client) ListEvents() ([]Event, error) {
	var events []Event
	if err := c.Get("/events", c.viewerParams(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event by ID.
func (c *Client) GetEvent(id int64) (Event, error) {
	var event Event
	err := c.Get(fmt.Sprintf("/events/%d", id), c.viewerParams(), &event)
	return event, err
}

// CreateEvent posts a new event and returns its ID. The backend replies with
// {"eventID": n}; {"id": n} is also accepted.
func (c *Client) CreateEvent(req CreateEventRequest) (int64, error) {
	var resp struct {
		EventID int64 `json:"eventID"`
		ID      int64 `json:"id"`
	}
	if err := c.Post("/events", req, &resp); err != nil {
		return 0, err
	}
	if resp.EventID != 0 {
		return resp.EventID, nil
	}
	return resp.ID, nil
}

// UpdateEvent applies a partial update to an event.
func (c *Client) UpdateEvent(id int64, req UpdateEventRequest) error {
	if req.UpdaterID == "" {
		req.UpdaterID = c.UserID
	}
	var resp struct {
		Success bool `json:"success"`
	}
	return c.Put(fmt.Sprintf("/events/%d", id), req, &resp)
}

// DeleteEvent removes an event. A soft delete marks it Inactive; hard
// deletes (Faculty only) remove the row outright.
func (c *Client) DeleteEvent(id int64, hard bool) error {
	params := c.viewerParams()
	if hard {
		params.Set("hard", "true")
	}
	path := fmt.Sprintf("/events/%d", id)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var resp struct {
		Success bool `json:"success"`
	}
	return c.Delete(path, nil, &resp)
}

type userIDBody struct {
	UserID string `json:"user_id"`
}

type likesResponse struct {
	Likes int `json:"likes"`
}

type rsvpsResponse struct {
	RSVPs []string `json:"rsvps"`
}

// Like records the viewer's like and returns the new like count.
func (c *Client) Like(id int64) (int, error) {
	var resp likesResponse
	err := c.Post(fmt.Sprintf("/events/%d/like", id), userIDBody{c.UserID}, &resp)
	return resp.Likes, err
}

// Unlike removes the viewer's like and returns the new like count.
func (c *Client) Unlike(id int64) (int, error) {
	var resp likesResponse
	err := c.Delete(fmt.Sprintf("/events/%d/like", id), userIDBody{c.UserID}, &resp)
	return resp.Likes, err
}

// RSVP records the viewer's RSVP and returns the new RSVP list.
func (c *Client) RSVP(id int64) ([]string, error) {
	var resp rsvpsResponse
	err := c.Post(fmt.Sprintf("/events/%d/rsvp", id), userIDBody{c.UserID}, &resp)
	return resp.RSVPs, err
}

// CancelRSVP removes the viewer's RSVP and returns the new RSVP list.
func (c *Client) CancelRSVP(id int64) ([]string, error) {
	var resp rsvpsResponse
	err := c.Delete(fmt.Sprintf("/events/%d/rsvp", id), userIDBody{c.UserID}, &resp)
	return resp.RSVPs, err
}

// SearchEvents filters events server-side by title, category, and date range.
func (c *Client) SearchEvents(f SearchFilter) ([]Event, error) {
	params := c.viewerParams()
	if f.Title != "" {
		params.Set("title", f.Title)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	var events []Event
	if err := c.Get("/search", params, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SearchUsers looks up invite candidates by name fragment.
func (c *Client) SearchUsers(query string) ([]InviteCandidate, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var users []InviteCandidate
	if err := c.Get("/users", params, &users); err != nil {
		return nil, err
	}
	return users, nil
}
