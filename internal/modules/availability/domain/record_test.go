package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalEmpty(t *testing.T) {
	assert.Equal(t, EmptyCanonical, ResultSet{}.Canonical())
	assert.Equal(t, EmptyCanonical, ResultSet(nil).Canonical())
}

func TestCanonicalContainsAllFields(t *testing.T) {
	rs := ResultSet{
		{ResortName: "Bay Lake Tower", RoomType: "Studio", ViewType: "Lake", Points: 118, Availability: StatusFull},
	}
	out := rs.Canonical()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ResortName")
	assert.Contains(t, lines[1], "Bay Lake Tower")
	assert.Contains(t, lines[1], "Studio")
	assert.Contains(t, lines[1], "Lake")
	assert.Contains(t, lines[1], "118")
	assert.Contains(t, lines[1], StatusFull)
}

func TestCanonicalIsDeterministic(t *testing.T) {
	rs := ResultSet{
		{ResortName: "Polynesian", RoomType: "Bungalow", ViewType: "Theme Park", Points: 204, Availability: StatusFull},
		{ResortName: "Riviera", RoomType: "Tower Studio", ViewType: "Standard", Points: 83, Availability: StatusFull},
	}
	assert.Equal(t, rs.Canonical(), rs.Canonical())
}

func TestCanonicalIsOrderSensitive(t *testing.T) {
	a := Record{ResortName: "Polynesian", RoomType: "Bungalow", ViewType: "Theme Park", Points: 204, Availability: StatusFull}
	b := Record{ResortName: "Riviera", RoomType: "Tower Studio", ViewType: "Standard", Points: 83, Availability: StatusFull}

	assert.NotEqual(t, ResultSet{a, b}.Canonical(), ResultSet{b, a}.Canonical())
}

func TestCanonicalPointsFormatting(t *testing.T) {
	whole := ResultSet{{ResortName: "R", RoomType: "S", ViewType: "V", Points: 16, Availability: StatusFull}}
	assert.Contains(t, whole.Canonical(), "16")
	assert.NotContains(t, whole.Canonical(), "16.0")

	fractional := ResultSet{{ResortName: "R", RoomType: "S", ViewType: "V", Points: 16.5, Availability: StatusFull}}
	assert.Contains(t, fractional.Canonical(), "16.5")
}
