package filter

import (
	"strings"

	"github.com/dvcwatch/availability-alerts/internal/modules/availability/domain"
	"github.com/samber/lo"
)

// nonWDWKeywords marks resorts outside Walt Disney World. A resort name
// containing any of these is dropped when ExcludeNonWDW is set.
var nonWDWKeywords = []string{"Aulani", "Beach", "Disneyland", "Hilton", "Californian"}

// Criteria holds the optional per-alert filter settings. The zero value
// keeps every fully-available record.
type Criteria struct {
	RoomType      string
	ExcludeNonWDW bool
	ResortNames   []string
}

// Apply returns the records satisfying every active rule, preserving the
// original order. All rules are independent per-record predicates composed
// with AND; the keyword lists inside a rule use OR semantics.
func Apply(rs domain.ResultSet, c Criteria) domain.ResultSet {
	return lo.Filter(rs, func(r domain.Record, _ int) bool {
		return matches(r, c)
	})
}

func matches(r domain.Record, c Criteria) bool {
	if r.Availability != domain.StatusFull {
		return false
	}
	if c.RoomType != "" && !containsFold(r.RoomType, c.RoomType) {
		return false
	}
	if c.ExcludeNonWDW && containsAnyFold(r.ResortName, nonWDWKeywords) {
		return false
	}
	if len(c.ResortNames) > 0 && !containsAnyFold(r.ResortName, c.ResortNames) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsAnyFold(s string, substrs []string) bool {
	return lo.SomeBy(substrs, func(substr string) bool {
		return containsFold(s, substr)
	})
}
