package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// StatusFull is the availability value that qualifies a record for alerting.
// Anything else (partial or no availability) is excluded unconditionally.
const StatusFull = "Full"

// Record is one room-inventory row returned by the points API.
type Record struct {
	ResortName   string
	RoomType     string
	ViewType     string
	Points       float64
	Availability string
}

// ResultSet is an ordered collection of records. Order is the fetch order
// and is significant: the canonical form is compared byte-for-byte.
type ResultSet []Record

// EmptyCanonical is the canonical form of a result set with no records.
const EmptyCanonical = "(no availability)"

// Canonical renders the set as an aligned text table. The resulting string
// is the sole unit of change detection and persistence: any difference in
// row count, order or field values yields a different canonical form.
func (rs ResultSet) Canonical() string {
	if len(rs) == 0 {
		return EmptyCanonical
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ResortName\tRoomType\tViewType\tPoints\tAvailability")
	for _, r := range rs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ResortName, r.RoomType, r.ViewType, formatPoints(r.Points), r.Availability)
	}
	w.Flush()

	return strings.TrimRight(buf.String(), "\n")
}

// formatPoints keeps whole point values free of a trailing ".0" so the
// canonical form stays stable across JSON number decoding.
func formatPoints(p float64) string {
	if p == math.Trunc(p) {
		return strconv.FormatInt(int64(p), 10)
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}
