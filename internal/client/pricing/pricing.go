// Package pricing estimates rental totals on the client. The backend computes
// the billed amount; this is only the preview shown before confirming.
package pricing

import (
	"math"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/models"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

// Periods returns how many billing units the interval [start, end) spans.
// Hourly periods are fractional; every other unit is rounded up to a whole
// number, with unknown units billed per day. ok is false when either time
// is zero, the unit is empty, or start is not before end.
func Periods(start, end time.Time, unit models.RentUnit) (n float64, ok bool) {
	if start.IsZero() || end.IsZero() || unit == "" || !start.Before(end) {
		return 0, false
	}
	elapsed := end.Sub(start)

	switch unit {
	case models.RentUnitHourly:
		return elapsed.Hours(), true
	case models.RentUnitWeekly:
		return ceilDiv(elapsed, week), true
	case models.RentUnitMonthly:
		return ceilDiv(elapsed, month), true
	default:
		return ceilDiv(elapsed, day), true
	}
}

// RentalTotal returns rate multiplied by the number of periods. ok is false
// when the total cannot be determined, including a non-positive rate.
func RentalTotal(start, end time.Time, rate float64, unit models.RentUnit) (float64, bool) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, false
	}
	n, ok := Periods(start, end, unit)
	if !ok {
		return 0, false
	}
	return rate * n, true
}

func ceilDiv(d, unit time.Duration) float64 {
	n := d / unit
	if d%unit != 0 {
		n++
	}
	return float64(n)
}
