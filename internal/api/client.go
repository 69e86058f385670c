package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client wraps HTTP calls to the CampusEvents API.
type Client struct {
	BaseURL string
	// UserID is the logged-in viewer's account ID. When set it is attached
	// to requests that personalize their responses (like/RSVP flags) or
	// that the backend authorizes per user.
	UserID     string
	HTTPClient *http.Client
}

// NewClient creates a Client from a base URL (e.g. http://localhost:8000) and
// the current viewer's account ID (empty when not logged in).
func NewClient(baseURL, userID string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		UserID:  userID,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is returned when the server sends a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d — %s", e.Status, e.Message)
}

// --- low-level helpers ---

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	u := c.BaseURL + path
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		// Try to extract the server's error message. The backend sends
		// {"detail": ...} on HTTP exceptions; some deployments wrap errors
		// as {"error": ...} instead.
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if json.Unmarshal(data, &errResp) == nil && (errResp.Detail != "" || errResp.Error != "") {
			msg := errResp.Error
			if errResp.Detail != "" {
				msg = errResp.Detail
			}
			return &APIError{Status: resp.StatusCode, Message: msg}
		}
		return &APIError{Status: resp.StatusCode, Message: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *Client) sendJSON(method, path string, body interface{}, out interface{}) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(method, path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.doJSON(req, out)
}

// Get sends a GET request and decodes the JSON body into out.
func (c *Client) Get(path string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.sendJSON(http.MethodGet, path, nil, out)
}

// Post sends a POST with a JSON body.
func (c *Client) Post(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodPost, path, body, out)
}

// Put sends a PUT with a JSON body.
func (c *Client) Put(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodPut, path, body, out)
}

// Delete sends a DELETE. The backend's like/RSVP removal endpoints expect a
// JSON body on DELETE, so one is allowed here.
func (c *Client) Delete(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodDelete, path, body, out)
}

// viewerParams returns query parameters carrying the viewer identity, so the
// backend can fill in userLiked/userRsvped flags.
func (c *Client) viewerParams() url.Values {
	params := url.Values{}
	if c.UserID != "" {
		params.Set("user_id", c.UserID)
	}
	return params
}
