package views

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/timex"
)

// FormatPrice renders an optional price, "-" when absent or zero.
func FormatPrice(p *float64) string {
	if p == nil || *p <= 0 {
		return "-"
	}
	return FormatAmount(*p)
}

func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatRentalPrice renders "$10.00 per day", or "-" when not for rent.
func FormatRentalPrice(p *float64, unit models.RentUnit) string {
	if p == nil || *p <= 0 || unit == "" {
		return "-"
	}
	return FormatAmount(*p) + " per " + unit.Label()
}

const dateDisplay = "January 2, 2006"

func FormatDate(t timex.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateDisplay)
}

// FormatPeriod renders a rental period as "start to end". Rental days are
// calendar dates held at UTC midnight, so they are not shifted into the
// local zone.
func FormatPeriod(start, end timex.Time) string {
	return formatDay(start) + " to " + formatDay(end)
}

func formatDay(t timex.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateDisplay)
}

// ParseDate reads a date typed by the user: YYYY-MM-DD (UTC midnight, so a
// day is always 24h) or any timestamp accepted from the backend.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timex.DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return timex.Parse(s)
}
