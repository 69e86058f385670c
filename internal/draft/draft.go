// Package draft loads event drafts from YAML files, so `create --from-file`
// can replay a prepared form instead of passing everything as flags.
package draft

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campusevents/cli/internal/api"
)

// Draft mirrors the authoring form's fields.
type Draft struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end,omitempty"`
	Location     string   `yaml:"location"`
	Categories   []string `yaml:"categories"`
	RSVPRequired bool     `yaml:"rsvp_required,omitempty"`
	Capacity     *int     `yaml:"capacity,omitempty"`
	Price        float64  `yaml:"price,omitempty"`
	Image        string   `yaml:"image,omitempty"`
	Private      bool     `yaml:"private,omitempty"`
	Invitees     []string `yaml:"invitees,omitempty"`
}

// Load reads a draft file and converts it to a create payload. Validation
// happens later, together with any flag overrides.
func Load(path string) (api.CreateEventRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.CreateEventRequest{}, fmt.Errorf("reading draft: %w", err)
	}
	return Parse(data)
}

// Parse decodes draft YAML into a create payload.
func Parse(data []byte) (api.CreateEventRequest, error) {
	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return api.CreateEventRequest{}, fmt.Errorf("parsing draft: %w", err)
	}
	return api.CreateEventRequest{
		Title:          d.Title,
		Description:    d.Description,
		StartDate:      d.Start,
		EndDate:        d.End,
		Location:       d.Location,
		Categories:     d.Categories,
		RSVPRequired:   d.RSVPRequired,
		Capacity:       d.Capacity,
		Price:          d.Price,
		ImageURL:       d.Image,
		IsPrivate:      d.Private,
		InvitedUserIDs: d.Invitees,
	}, nil
}
