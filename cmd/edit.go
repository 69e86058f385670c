package cmd

import (
	"fmt"
	"strings"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/eventref"
	"github.com/campusevents/cli/internal/output"
	"github.com/campusevents/cli/internal/validate"
	"github.com/spf13/cobra"
)

var (
	flagEditTitle       string
	flagEditDescription string
	flagEditStart       string
	flagEditEnd         string
	flagEditLocation    string
	flagEditCategories  []string
	flagEditRsvp        bool
	flagEditCapacity    int
	flagEditPrice       float64
	flagEditImage       string
	flagEditPrivate     bool
	flagEditInvite      []string
)

var editCmd = &cobra.Command{
	Use:   "edit <event>",
	Short: "Edit an event you created",
	Long: `Edit an event. Only the flags you pass are changed; everything else
keeps its current value. Switching --private=false clears the invite list.

  campusevents edit 42 --location "Ballroom B"
  campusevents edit "Fall Mixer" --price 5 --rsvp-required`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditTitle, "title", "", "Event title")
	editCmd.Flags().StringVar(&flagEditDescription, "description", "", "Event description")
	editCmd.Flags().StringVar(&flagEditStart, "start", "", "Start time")
	editCmd.Flags().StringVar(&flagEditEnd, "end", "", "End time")
	editCmd.Flags().StringVar(&flagEditLocation, "location", "", "Where the event is held")
	editCmd.Flags().StringArrayVar(&flagEditCategories, "category", nil, "Event category (repeatable, replaces the set)")
	editCmd.Flags().BoolVar(&flagEditRsvp, "rsvp-required", false, "Attendees must RSVP")
	editCmd.Flags().IntVar(&flagEditCapacity, "capacity", 0, "Maximum attendees")
	editCmd.Flags().Float64Var(&flagEditPrice, "price", 0, "Ticket price")
	editCmd.Flags().StringVar(&flagEditImage, "image", "", "Banner image URL")
	editCmd.Flags().BoolVar(&flagEditPrivate, "private", false, "Invite-only event")
	editCmd.Flags().StringArrayVar(&flagEditInvite, "invite", nil, "Invitee user ID (repeatable, replaces the list)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := requireAuth("edit"); err != nil {
		return err
	}

	id, err := eventref.Resolve(eventStore, args[0])
	if err != nil {
		return err
	}

	current, err := eventStore.Get(id)
	if err != nil {
		return fmt.Errorf("fetching event: %w", err)
	}
	if !eventStore.CanModify(current) {
		return fmt.Errorf("you cannot edit %q — only its creator or Faculty can", current.Title)
	}

	req := buildUpdate(cmd)
	if req.Empty() {
		return fmt.Errorf("nothing to change — pass at least one field flag")
	}

	if err := validate.EventUpdate(req); err != nil {
		return err
	}

	if req.Categories != nil {
		req.Categories = canonicalCategories(req.Categories)
		for _, c := range req.Categories {
			if !validate.ValidCategory(c) {
				return fmt.Errorf("unknown category %q (known: %s)",
					c, strings.Join(validate.Categories, ", "))
			}
		}
		if len(req.Categories) == 0 {
			return fmt.Errorf("an event needs at least one category")
		}
	}
	if req.StartDate != nil {
		if _, perr := api.ParseEventTime(*req.StartDate); perr != nil {
			return fmt.Errorf("%q is not a valid start time", *req.StartDate)
		}
	}

	// Privacy transitions mirror the authoring form: going private requires
	// invitees, going public clears them.
	if req.IsPrivate != nil {
		if *req.IsPrivate {
			invitees := current.InvitedUserIDs
			if req.InvitedUserIDs != nil {
				invitees = *req.InvitedUserIDs
			}
			if len(invitees) == 0 {
				return fmt.Errorf("a private event needs at least one invitee — pass --invite")
			}
		} else {
			empty := []string{}
			req.InvitedUserIDs = &empty
		}
	}

	event, err := eventStore.Update(id, req)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	if flagJSON {
		output.JSON(event)
		return nil
	}

	fmt.Printf("Updated %q — view it with: campusevents show %d\n", event.Title, event.ID)
	return nil
}

func buildUpdate(cmd *cobra.Command) api.UpdateEventRequest {
	req := api.UpdateEventRequest{UpdaterID: eventStore.Viewer().ID}

	if cmd.Flags().Changed("title") {
		req.Title = &flagEditTitle
	}
	if cmd.Flags().Changed("description") {
		req.Description = &flagEditDescription
	}
	if cmd.Flags().Changed("start") {
		req.StartDate = &flagEditStart
	}
	if cmd.Flags().Changed("end") {
		req.EndDate = &flagEditEnd
	}
	if cmd.Flags().Changed("location") {
		req.Location = &flagEditLocation
	}
	if cmd.Flags().Changed("category") {
		req.Categories = flagEditCategories
	}
	if cmd.Flags().Changed("rsvp-required") {
		req.RSVPRequired = &flagEditRsvp
	}
	if cmd.Flags().Changed("capacity") {
		req.Capacity = &flagEditCapacity
	}
	if cmd.Flags().Changed("price") {
		req.Price = &flagEditPrice
	}
	if cmd.Flags().Changed("image") {
		req.ImageURL = &flagEditImage
	}
	if cmd.Flags().Changed("private") {
		req.IsPrivate = &flagEditPrivate
	}
	if cmd.Flags().Changed("invite") {
		invitees := append([]string(nil), flagEditInvite...)
		req.InvitedUserIDs = &invitees
	}
	return req
}
