package ics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusevents/cli/internal/api"
)

func TestExport(t *testing.T) {
	events := []api.Event{
		{
			ID: 1, Title: "Fall Mixer", Description: "Join us!",
			Location:  "Quad",
			StartDate: "2025-09-01 18:00:00", EndDate: "2025-09-01 20:00:00",
			Categories: []string{"Performance"},
		},
		{ID: 2, Title: "Undated", StartDate: "???"},
	}

	var buf bytes.Buffer
	n, err := Export(&buf, events)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "events without a parseable start are skipped")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Fall Mixer")
	assert.Contains(t, out, "LOCATION:Quad")
	assert.Contains(t, out, "DESCRIPTION:Join us!")
	assert.Contains(t, out, "UID:event-1@campusevents")
	assert.Contains(t, out, "CATEGORIES:Performance")
	assert.NotContains(t, out, "Undated")
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Export(&buf, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
}
