// Package availability turns the capacity ledger of an experience into a
// per-date view of already-booked guests.
package availability

import (
	"time"

	"github.com/costeratours/experience-service/internal/models"
)

// DateFormat is the key format of availability maps (ISO calendar date).
const DateFormat = "2006-01-02"

// Aggregate sums guest counts per travel date. Two bookings on the same date
// contribute additively. Dates with no bookings are absent from the map;
// callers must treat absence as zero.
func Aggregate(entries []models.LedgerEntry) map[string]int {
	booked := make(map[string]int, len(entries))
	for _, e := range entries {
		booked[e.TravelDate.Format(DateFormat)] += e.GuestsCount
	}
	return booked
}

// Remaining returns the seats left on a date given the experience's maximum
// capacity and the aggregated booked count, floored at zero.
func Remaining(maxCapacity, booked int) int {
	if r := maxCapacity - booked; r > 0 {
		return r
	}
	return 0
}

// Today returns the server's current calendar date, time component stripped.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
