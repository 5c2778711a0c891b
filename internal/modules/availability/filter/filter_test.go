package filter

import (
	"testing"

	"github.com/dvcwatch/availability-alerts/internal/modules/availability/domain"
	"github.com/stretchr/testify/assert"
)

func record(resort, room, status string) domain.Record {
	return domain.Record{
		ResortName:   resort,
		RoomType:     room,
		ViewType:     "Standard",
		Points:       100,
		Availability: status,
	}
}

func TestNonFullRecordsAlwaysExcluded(t *testing.T) {
	records := domain.ResultSet{
		record("Bay Lake Tower", "Studio", "Partial"),
		record("Polynesian", "Studio", "None"),
		record("Riviera", "Studio", "full"), // status match is exact, not folded
	}

	// Holds regardless of the other filter settings.
	criterias := []Criteria{
		{},
		{RoomType: "Studio"},
		{ExcludeNonWDW: true},
		{ResortNames: []string{"Riviera", "Polynesian"}},
		{RoomType: "Studio", ExcludeNonWDW: true, ResortNames: []string{"Riviera"}},
	}
	for _, c := range criterias {
		assert.Empty(t, Apply(records, c))
	}
}

func TestRoomTypeSubstringIsCaseInsensitive(t *testing.T) {
	records := domain.ResultSet{
		record("Bay Lake Tower", "Deluxe Studio", domain.StatusFull),
		record("Bay Lake Tower", "1 Bedroom", domain.StatusFull),
	}

	got := Apply(records, Criteria{RoomType: "sTuDiO"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Deluxe Studio", got[0].RoomType)
}

func TestExcludeNonWDW(t *testing.T) {
	records := domain.ResultSet{
		record("Aulani, A Disney Resort & Spa", "Studio", domain.StatusFull),
		record("Disney's Vero Beach Resort", "Studio", domain.StatusFull),
		record("Disneyland Hotel", "Studio", domain.StatusFull),
		record("The Villas at Disneyland Hotel", "Studio", domain.StatusFull),
		record("Bay Lake Tower", "Studio", domain.StatusFull),
	}

	got := Apply(records, Criteria{ExcludeNonWDW: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "Bay Lake Tower", got[0].ResortName)
}

func TestResortNamesMatchAny(t *testing.T) {
	records := domain.ResultSet{
		record("Bay Lake Tower", "Studio", domain.StatusFull),
		record("Polynesian Villas", "Studio", domain.StatusFull),
		record("Riviera Resort", "Studio", domain.StatusFull),
	}

	got := Apply(records, Criteria{ResortNames: []string{"bay lake", "riviera"}})
	assert.Len(t, got, 2)
	assert.Equal(t, "Bay Lake Tower", got[0].ResortName)
	assert.Equal(t, "Riviera Resort", got[1].ResortName)
}

func TestInclusionAndExclusionCompose(t *testing.T) {
	records := domain.ResultSet{
		record("Disney's Beach Club Villas", "Studio", domain.StatusFull), // matches include, hits denylist
		record("Bay Lake Tower", "Studio", domain.StatusFull),             // matches include, passes denylist
		record("Riviera Resort", "Studio", domain.StatusFull),             // passes denylist, misses include
	}

	include := Apply(records, Criteria{ResortNames: []string{"Beach Club", "Bay Lake"}})
	exclude := Apply(records, Criteria{ExcludeNonWDW: true})
	both := Apply(records, Criteria{ResortNames: []string{"Beach Club", "Bay Lake"}, ExcludeNonWDW: true})

	// Both filters together yield the intersection of their individual effects.
	assert.Len(t, include, 2)
	assert.Len(t, exclude, 2)
	assert.Len(t, both, 1)
	assert.Equal(t, "Bay Lake Tower", both[0].ResortName)
}

func TestOrderPreserved(t *testing.T) {
	records := domain.ResultSet{
		record("Riviera Resort", "Studio", domain.StatusFull),
		record("Bay Lake Tower", "Studio", domain.StatusFull),
		record("Polynesian Villas", "Studio", domain.StatusFull),
	}

	got := Apply(records, Criteria{})
	assert.Equal(t, records, got)
}
