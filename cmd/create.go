package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/draft"
	"github.com/campusevents/cli/internal/invite"
	"github.com/campusevents/cli/internal/output"
	"github.com/campusevents/cli/internal/validate"
	"github.com/spf13/cobra"
)

var (
	flagTitle        string
	flagDescription  string
	flagStart        string
	flagEnd          string
	flagLocation     string
	flagCategories   []string
	flagRsvpRequired bool
	flagCapacity     int
	flagPrice        float64
	flagImage        string
	flagPrivate      bool
	flagInvite       []string
	flagFromFile     string
	flagYes          bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Long: `Create an event from flags or from a YAML draft file. A preview is
shown before anything is sent; nothing reaches the server until the draft
passes validation.

  campusevents create --title "Fall Mixer" --description "Join us!" \
      --start "2025-09-01T18:00" --location Quad --category Performance

  campusevents create --from-file mixer.yaml

Private events need at least one invitee; pass --invite repeatedly or pick
interactively when prompted. Known categories:
  ` + strings.Join(validate.Categories, ", "),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&flagTitle, "title", "", "Event title")
	createCmd.Flags().StringVar(&flagDescription, "description", "", "Event description")
	createCmd.Flags().StringVar(&flagStart, "start", "", "Start time (e.g. 2025-09-01T18:00)")
	createCmd.Flags().StringVar(&flagEnd, "end", "", "End time")
	createCmd.Flags().StringVar(&flagLocation, "location", "", "Where the event is held")
	createCmd.Flags().StringArrayVar(&flagCategories, "category", nil, "Event category (repeatable)")
	createCmd.Flags().BoolVar(&flagRsvpRequired, "rsvp-required", false, "Attendees must RSVP")
	createCmd.Flags().IntVar(&flagCapacity, "capacity", 0, "Maximum attendees (0 = unlimited)")
	createCmd.Flags().Float64Var(&flagPrice, "price", 0, "Ticket price (0 = free)")
	createCmd.Flags().StringVar(&flagImage, "image", "", "Banner image URL")
	createCmd.Flags().BoolVar(&flagPrivate, "private", false, "Invite-only event")
	createCmd.Flags().StringArrayVar(&flagInvite, "invite", nil, "Invitee user ID (repeatable, implies --private)")
	createCmd.Flags().StringVar(&flagFromFile, "from-file", "", "Load the event draft from a YAML file")
	createCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth("create"); err != nil {
		return err
	}

	req := api.CreateEventRequest{}
	if flagFromFile != "" {
		var err error
		req, err = draft.Load(flagFromFile)
		if err != nil {
			return err
		}
	}

	applyCreateFlags(cmd, &req)
	req.CreatorID = eventStore.Viewer().ID

	// Turning privacy off discards any invite list that came with the draft.
	if !req.IsPrivate {
		req.InvitedUserIDs = nil
	}

	// Dedup invitees, then canonicalize category spelling.
	sel := invite.NewSelection()
	for _, id := range req.InvitedUserIDs {
		sel.Add(api.InviteCandidate{ID: id})
	}
	req.InvitedUserIDs = sel.IDs()
	req.Categories = canonicalCategories(req.Categories)

	if req.IsPrivate && len(req.InvitedUserIDs) == 0 {
		ids, err := pickInvitees()
		if err != nil {
			return err
		}
		req.InvitedUserIDs = ids
	}

	if req.ImageURL == "" {
		req.ImageURL = validate.DefaultImageURL
	}

	if err := validate.Event(req); err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Println("The event cannot be submitted yet:")
			for _, f := range verr.Fields {
				fmt.Printf("  - %s %s\n", f.Field, f.Message)
			}
		}
		return err
	}

	output.EventPreview(req)

	if !flagYes {
		fmt.Print("Create this event? [Y/n] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer == "n" || answer == "no" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	event, err := eventStore.Create(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create failed: %v\n", err)
		return fmt.Errorf("could not create the event — please try again")
	}

	if flagJSON {
		output.JSON(event)
		return nil
	}

	if event.ID != 0 {
		fmt.Printf("Created %q — view it with: campusevents show %d\n", req.Title, event.ID)
	} else {
		fmt.Printf("Created %q — it will appear under: campusevents browse\n", req.Title)
	}
	return nil
}

// applyCreateFlags overlays any explicitly-set flags onto the draft, so flag
// values win over --from-file contents.
func applyCreateFlags(cmd *cobra.Command, req *api.CreateEventRequest) {
	if cmd.Flags().Changed("title") {
		req.Title = flagTitle
	}
	if cmd.Flags().Changed("description") {
		req.Description = flagDescription
	}
	if cmd.Flags().Changed("start") {
		req.StartDate = flagStart
	}
	if cmd.Flags().Changed("end") {
		req.EndDate = flagEnd
	}
	if cmd.Flags().Changed("location") {
		req.Location = flagLocation
	}
	if cmd.Flags().Changed("category") {
		req.Categories = flagCategories
	}
	if cmd.Flags().Changed("rsvp-required") {
		req.RSVPRequired = flagRsvpRequired
	}
	if cmd.Flags().Changed("capacity") && flagCapacity > 0 {
		c := flagCapacity
		req.Capacity = &c
	}
	if cmd.Flags().Changed("price") {
		req.Price = flagPrice
	}
	if cmd.Flags().Changed("image") {
		req.ImageURL = flagImage
	}
	if cmd.Flags().Changed("private") {
		req.IsPrivate = flagPrivate
	}
	if cmd.Flags().Changed("invite") {
		req.InvitedUserIDs = flagInvite
		req.IsPrivate = true
	}
}

func canonicalCategories(cats []string) []string {
	seen := make(map[string]bool, len(cats))
	var out []string
	for _, c := range cats {
		canon := validate.CanonicalCategory(strings.TrimSpace(c))
		if canon == "" || seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, canon)
	}
	return out
}

// pickInvitees runs the interactive search-and-select loop used when a
// private event has no invitees yet.
func pickInvitees() ([]string, error) {
	reader := bufio.NewReader(os.Stdin)
	sel := invite.NewSelection()

	fmt.Println("Private events need invitees. Search users by name; enter an ID to")
	fmt.Println("toggle selection; press enter on an empty line when done.")

	for {
		fmt.Printf("[%d selected] search or ID: ", sel.Len())
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		candidates, err := apiClient.SearchUsers(line)
		if err != nil {
			fmt.Printf("  search failed: %v\n", err)
			continue
		}

		// An exact ID match toggles; otherwise show the matches.
		toggled := false
		for _, c := range candidates {
			if c.ID == line {
				if sel.Contains(c.ID) {
					sel.Remove(c.ID)
					fmt.Printf("  removed %s\n", c.Name)
				} else {
					sel.Add(c)
					fmt.Printf("  added %s\n", c.Name)
				}
				toggled = true
				break
			}
		}
		if !toggled {
			output.CandidateTable(candidates)
		}
	}

	return sel.IDs(), nil
}
